package handler_test

import (
	"encoding/json"
	"testing"

	"github.com/pahana/bookshop-order-service/internal/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseNumber_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		raw  string
		want handler.LooseNumber
	}{
		{raw: `2`, want: "2"},
		{raw: `1500.50`, want: "1500.50"},
		{raw: `"2"`, want: "2"},
		{raw: `"abc"`, want: "abc"},
		{raw: `null`, want: ""},
		{raw: `true`, want: "true"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			var item handler.PlaceOrderItem
			err := json.Unmarshal([]byte(`{"quantity":`+tc.raw+`}`), &item)
			require.NoError(t, err)
			assert.Equal(t, tc.want, item.Quantity)
		})
	}
}

func TestPlaceOrderRequestToEntity(t *testing.T) {
	var req handler.PlaceOrderRequest
	err := json.Unmarshal([]byte(validOrderBody), &req)
	require.NoError(t, err)

	in := handler.PlaceOrderRequestToEntity(req)
	assert.Equal(t, "cust001", in.UserID)
	assert.Equal(t, "customer@example.com", in.UserEmail)
	assert.Equal(t, "123 Test Street, Colombo", in.DeliveryAddress)
	require.Len(t, in.Items, 2)
	assert.Equal(t, "1500.00", in.Items[0].Price)
	assert.Equal(t, "1", in.Items[1].Quantity)
	assert.Empty(t, in.TaxAmount)
}
