package infra

import "context"

type NotifierInterface interface {
	Notify(ctx context.Context, email string, orderID uint64, amount string) error
}

var _ NotifierInterface = (*Notifier)(nil)
