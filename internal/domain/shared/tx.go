package shared

import "context"

// TxManager runs a function inside a single storage transaction. Repository
// calls made with the context passed to fn join that transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
