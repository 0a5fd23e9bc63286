package trm

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockManager(t *testing.T) (Manager, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewManager(sqlx.NewDb(db, "sqlmock")), mock
}

func TestDo(t *testing.T) {
	errCallback := errors.New("insert failed")

	testCases := []struct {
		name         string
		mockBehavior func(m sqlmock.Sqlmock)
		callback     func(ctx context.Context) error
		wantErr      error
	}{
		{
			name: "commit on success",
			mockBehavior: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectCommit()
			},
			callback: func(ctx context.Context) error {
				if ExtractTx(ctx) == nil {
					return errors.New("no tx in context")
				}
				return nil
			},
		},
		{
			name: "rollback on callback error",
			mockBehavior: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectRollback()
			},
			callback: func(context.Context) error { return errCallback },
			wantErr:  errCallback,
		},
		{
			name: "begin fails",
			mockBehavior: func(m sqlmock.Sqlmock) {
				m.ExpectBegin().WillReturnError(errCallback)
			},
			callback: func(context.Context) error {
				return errors.New("callback must not run without a transaction")
			},
			wantErr: errCallback,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			manager, mock := newMockManager(t)
			tc.mockBehavior(mock)

			err := manager.Do(context.Background(), tc.callback)

			assert.ErrorIs(t, err, tc.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSavepoint(t *testing.T) {
	errCallback := errors.New("cart is locked")
	errConn := errors.New("connection reset")

	testCases := []struct {
		name         string
		mockBehavior func(m sqlmock.Sqlmock)
		wantErr      []error
	}{
		{
			name: "released on success",
			mockBehavior: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(`SAVEPOINT "clear_cart"`).WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectExec(`DELETE FROM cart`).WillReturnResult(sqlmock.NewResult(0, 2))
				m.ExpectExec(`RELEASE SAVEPOINT "clear_cart"`).WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectCommit()
			},
		},
		{
			name: "rolled back to savepoint, outer transaction commits",
			mockBehavior: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(`SAVEPOINT "clear_cart"`).WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectExec(`DELETE FROM cart`).WillReturnError(errCallback)
				m.ExpectExec(`ROLLBACK TO SAVEPOINT "clear_cart"`).WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectCommit()
			},
			wantErr: []error{errCallback},
		},
		{
			name: "rollback to savepoint fails",
			mockBehavior: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(`SAVEPOINT "clear_cart"`).WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectExec(`DELETE FROM cart`).WillReturnError(errCallback)
				m.ExpectExec(`ROLLBACK TO SAVEPOINT "clear_cart"`).WillReturnError(errConn)
				m.ExpectCommit()
			},
			wantErr: []error{errConn, errCallback},
		},
		{
			name: "savepoint cannot be created",
			mockBehavior: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(`SAVEPOINT "clear_cart"`).WillReturnError(errConn)
				m.ExpectCommit()
			},
			wantErr: []error{errConn},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			manager, mock := newMockManager(t)
			tc.mockBehavior(mock)

			var savepointErr error
			err := manager.Do(context.Background(), func(ctx context.Context) error {
				savepointErr = manager.Savepoint(ctx, "clear_cart", func(ctx context.Context) error {
					_, err := ExtractTx(ctx).ExecContext(ctx, "DELETE FROM cart")
					return err
				})
				// ошибка внутри savepoint не должна ронять внешнюю транзакцию
				return nil
			})

			require.NoError(t, err)
			if len(tc.wantErr) == 0 {
				assert.NoError(t, savepointErr)
			}
			for _, want := range tc.wantErr {
				assert.ErrorIs(t, savepointErr, want)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSavepoint_WithoutTransaction(t *testing.T) {
	m := &txManager{}
	callErr := errors.New("boom")

	called := false
	err := m.Savepoint(context.Background(), "clear_cart", func(ctx context.Context) error {
		called = true
		return callErr
	})

	assert.True(t, called)
	assert.ErrorIs(t, err, callErr)
}

func TestExtractTx_Empty(t *testing.T) {
	assert.Nil(t, ExtractTx(context.Background()))
}
