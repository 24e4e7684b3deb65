package usecase

import (
	"context"
	"log"

	"clinic_pos/internal/domain/aggregation"
	"clinic_pos/internal/domain/bundlemeta"
	"clinic_pos/internal/domain/entities"
	"clinic_pos/internal/usecase/interfaces"
)

// ISalesReportUseCase exposes the reconstructed sales view: flat persisted
// rows regrouped into the logical orders/bundles they were sold as.
type ISalesReportUseCase interface {
	ListGroupedSales(ctx context.Context, domain entities.SaleDomain) ([]entities.AggregatedGroup, error)
}

type SalesReportUseCase struct {
	sales   interfaces.ISaleRepository
	bundles interfaces.IBundleContentsRepository
}

var _ ISalesReportUseCase = (*SalesReportUseCase)(nil)

func NewSalesReportUseCase(sales interfaces.ISaleRepository, bundles interfaces.IBundleContentsRepository) *SalesReportUseCase {
	return &SalesReportUseCase{sales: sales, bundles: bundles}
}

func (u *SalesReportUseCase) ListGroupedSales(ctx context.Context, domain entities.SaleDomain) ([]entities.AggregatedGroup, error) {
	items, err := u.sales.ListByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}

	contents := u.loadBundleContents(ctx, items)
	groups := aggregation.Group(items, contents)
	log.Printf("[sales][usecase] domain=%s rows=%d groups=%d", domain, len(items), len(groups))
	return groups, nil
}

// loadBundleContents fetches the compositions of every bundle referenced by
// the rows. A lookup failure degrades aggregation (raw-sum quantities)
// instead of failing the listing.
func (u *SalesReportUseCase) loadBundleContents(ctx context.Context, items []entities.SaleLineItem) map[string]entities.BundleContents {
	if u.bundles == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, item := range items {
		desc, _ := bundlemeta.DescriptorFor(item)
		if desc == nil || desc.ID == "" {
			continue
		}
		if _, dup := seen[desc.ID]; dup {
			continue
		}
		seen[desc.ID] = struct{}{}
		ids = append(ids, desc.ID)
	}
	if len(ids) == 0 {
		return nil
	}

	contents, err := u.bundles.GetByBundleIDs(ctx, ids)
	if err != nil {
		log.Printf("[sales][usecase] bundle contents lookup failed, degrading to raw sums: %v", err)
		return nil
	}
	return contents
}
