package repositories

import (
	"context"
)

// TransactionManager defines methods for transaction management.
// The transaction travels in the context handed to fn; repository calls made
// with that context run inside it.
type TransactionManager interface {
	// WithinTransaction runs fn in a read-write transaction, committing when fn returns nil.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// WithinReadSnapshot runs fn in a read-only, repeatable-read transaction so that
	// every lookup made by fn observes the same snapshot.
	WithinReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}
