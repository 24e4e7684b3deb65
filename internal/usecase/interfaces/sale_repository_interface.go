package interfaces

import (
	"context"

	"clinic_pos/internal/domain/entities"
)

// ISaleRepository abstracts DynamoDB persistence for sale line items.
//
// The sales list endpoint returns flat per-SKU rows for one domain; the
// reconstruction engine regroups them client-side of this interface. Rows
// written by checkout are created as a batch so one purchase lands whole.
type ISaleRepository interface {
	ListByDomain(ctx context.Context, domain entities.SaleDomain) ([]entities.SaleLineItem, error)
	CreateBatch(ctx context.Context, items []entities.SaleLineItem) error
}
