// Package store persists the prior contact database — the
// ExistingDatabase precedence tier of the contact merge.
package store

import (
	"context"

	"github.com/sells-group/permit-leads/internal/model"
)

// ContactStore defines the persistence interface for prior contacts.
// Rows are keyed by normalized company name.
type ContactStore interface {
	GetByCompany(ctx context.Context, normalizedName string) (*model.PriorContact, error)
	Upsert(ctx context.Context, contact *model.PriorContact) error
	All(ctx context.Context) ([]model.PriorContact, error)
	Migrate(ctx context.Context) error
	Close() error
}
