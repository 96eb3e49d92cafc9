package ports

import "context"

// TxRunner executes fn inside a single unit of work. Every write issued with
// the context passed to fn commits or aborts together.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
