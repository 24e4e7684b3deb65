package interfaces

import (
	"context"

	"clinic_pos/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for catalog items,
// including their optional per-identity price tier maps.
type ICatalogRepository interface {
	ListByDomain(ctx context.Context, domain entities.SaleDomain) ([]entities.CatalogItem, error)
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
}
