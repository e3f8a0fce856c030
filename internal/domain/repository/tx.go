package repository

import "context"

// TxManager runs a function within a single database transaction. Every
// repository call made through the returned context participates in the
// same transaction; the transaction commits when fn returns nil and rolls
// back otherwise. Nested calls join the surrounding transaction.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
