package events

import (
	"context"
	"errors"

	"github.com/pahana/bookshop-order-service/internal/entities"
)

type Publisher interface {
	Publish(ctx context.Context, e entities.OrderEvent) error
}

type multiPublisher []Publisher

// Multi отправляет событие во все паблишеры и собирает их ошибки
func Multi(publishers ...Publisher) Publisher {
	return multiPublisher(publishers)
}

func (m multiPublisher) Publish(ctx context.Context, e entities.OrderEvent) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
