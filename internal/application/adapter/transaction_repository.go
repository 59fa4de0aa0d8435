// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukan-ledger/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence
// operations. Mutations are whole-record replace-or-insert keyed by ID;
// the system assumes a single writer.
type TransactionRepository interface {
	// Create creates a new transaction in the store.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// BulkCreate appends a batch of transactions in one operation.
	// Records already written are not rolled back on partial failure.
	BulkCreate(ctx context.Context, transactions []*entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves a snapshot of the full transaction set,
	// ordered newest first.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// Update replaces a stored transaction with the given record.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// BulkDelete removes the given transactions and returns how many
	// records were actually deleted.
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
}
