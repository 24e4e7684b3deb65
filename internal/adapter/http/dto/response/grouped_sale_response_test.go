package response

import (
	"testing"
	"time"

	"clinic_pos/internal/domain/entities"
)

func TestFromAggregatedGroup(t *testing.T) {
	soldAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	group := entities.AggregatedGroup{
		Key:             entities.GroupKey{Kind: entities.GroupKindBundle, BundleID: "b-1", BundleName: "Glow Pack", BundleQty: 2},
		DisplayName:     "Glow Pack",
		Quantity:        2,
		OriginalTotal:   450,
		DiscountTotal:   50,
		FinalTotal:      400,
		UnitBundlePrice: 200,
		Items: []entities.SaleLineItem{
			{ID: "r1", ItemName: "Cream", Quantity: 4, UnitPrice: entities.FlexPriceFrom(62.5), FinalPrice: entities.FlexPriceFrom(250), SoldAt: soldAt},
			{ID: "r2", ItemName: "Serum", Quantity: 2, FinalPrice: entities.FlexPriceFrom(150)},
		},
	}

	got := FromAggregatedGroup(group)
	if got.Kind != "bundle" || got.GroupKey != group.Key.String() {
		t.Fatalf("unexpected key fields: %+v", got)
	}
	if got.Quantity != 2 || got.FinalTotal != 400 || got.UnitBundlePrice != 200 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	if got.Items[0].UnitPrice == nil || *got.Items[0].UnitPrice != 62.5 {
		t.Fatalf("unexpected unit price: %+v", got.Items[0])
	}
	if got.Items[0].SoldAt != "2025-03-14T10:30:00Z" {
		t.Fatalf("unexpected sold_at: %q", got.Items[0].SoldAt)
	}
	// r2 has no unit price on record; the field must be omitted, not zero.
	if got.Items[1].UnitPrice != nil {
		t.Fatalf("absent unit price must stay absent: %+v", got.Items[1])
	}
	if got.Items[1].SoldAt != "" {
		t.Fatalf("zero sold_at must stay empty: %q", got.Items[1].SoldAt)
	}
}
