package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"clinic_pos/internal/domain/entities"
	mock_interfaces "clinic_pos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sellableCatalog() []entities.CatalogItem {
	return []entities.CatalogItem{
		{ID: "p1", Name: "Day Cream", Type: entities.CatalogItemTypeProduct,
			BasePrice:  entities.FlexPriceFrom(100),
			PriceTiers: entities.PriceTierTable{"vip": entities.FlexPriceFrom(80)}},
		{ID: "p2", Name: "Night Serum", Type: entities.CatalogItemTypeProduct,
			BasePrice: entities.FlexPriceFrom(120)},
		{ID: "p3", Name: "Unpriced Thing", Type: entities.CatalogItemTypeProduct},
	}
}

func TestCatalogUseCase_ListSellable(t *testing.T) {
	t.Run("empty identity", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.ListSellable(context.Background(), entities.SaleDomainProduct, "  ", nil)
		if !errors.Is(err, ErrInvalidIdentity) {
			t.Fatalf("expected ErrInvalidIdentity, got %v", err)
		}
	})

	t.Run("restricted identity is refused outright", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.ListSellable(context.Background(), entities.SaleDomainProduct, "vip", entities.NewIdentitySet("vip"))
		if !errors.Is(err, ErrRestrictedIdentity) {
			t.Fatalf("expected ErrRestrictedIdentity, got %v", err)
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(catalog, nil)

		catalog.EXPECT().ListByDomain(gomock.Any(), entities.SaleDomainProduct).Return(nil, errors.New("db"))

		_, err := uc.ListSellable(context.Background(), entities.SaleDomainProduct, entities.IdentityGeneral, nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("vip tab lists only vip-priced items at the vip price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(catalog, nil)

		catalog.EXPECT().ListByDomain(gomock.Any(), entities.SaleDomainProduct).Return(sellableCatalog(), nil)

		got, err := uc.ListSellable(context.Background(), entities.SaleDomainProduct, "vip", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Item.ID != "p1" || got[0].UnitPrice != 80 {
			t.Fatalf("unexpected sellable list: %+v", got)
		}
	})

	t.Run("all tab excludes items with a pricing gap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(catalog, nil)

		catalog.EXPECT().ListByDomain(gomock.Any(), entities.SaleDomainProduct).Return(sellableCatalog(), nil)

		got, err := uc.ListSellable(context.Background(), entities.SaleDomainProduct, entities.IdentityAll, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// p3 is visible (general by default) but has no resolvable price,
		// so it must be excluded rather than listed at zero.
		if len(got) != 2 {
			t.Fatalf("expected 2 sellable items, got %+v", got)
		}
		for _, s := range got {
			if s.Item.ID == "p3" {
				t.Fatalf("pricing-gap item leaked into the list")
			}
		}
	})
}

func TestCatalogUseCase_RecomputeSelections(t *testing.T) {
	uc := NewCatalogUseCase(nil, nil)
	catalog := sellableCatalog()

	selections := []entities.Selection{
		{CatalogItemID: "p1", Name: "Day Cream", Identity: entities.IdentityGeneral, Quantity: 2, UnitPrice: 100, Subtotal: 200},
		{CatalogItemID: "p2", Name: "Night Serum", Identity: entities.IdentityGeneral, Quantity: 1, UnitPrice: 120, Subtotal: 120},
		{CatalogItemID: "gone", Name: "Removed", Identity: entities.IdentityGeneral, Quantity: 1, UnitPrice: 10, Subtotal: 10},
	}

	t.Run("identity change reprices and drops unsupported items", func(t *testing.T) {
		got := uc.RecomputeSelections(selections, catalog, "vip", nil)
		// p2 has no vip tier and p1 reprices to 80; "gone" vanished from
		// the catalog.
		if len(got) != 1 {
			t.Fatalf("expected 1 selection, got %+v", got)
		}
		if got[0].CatalogItemID != "p1" || got[0].UnitPrice != 80 || got[0].Subtotal != 160 || got[0].Identity != "vip" {
			t.Fatalf("unexpected repriced selection: %+v", got[0])
		}
	})

	t.Run("restriction drops already-made selections", func(t *testing.T) {
		got := uc.RecomputeSelections(selections, catalog, entities.IdentityGeneral, entities.NewIdentitySet(entities.IdentityGeneral))
		if len(got) != 0 {
			t.Fatalf("expected restriction to clear selections, got %+v", got)
		}
	})

	t.Run("pure: input selections unchanged and recompute idempotent", func(t *testing.T) {
		before, _ := json.Marshal(selections)
		first := uc.RecomputeSelections(selections, catalog, "vip", nil)
		second := uc.RecomputeSelections(first, catalog, "vip", nil)
		after, _ := json.Marshal(selections)
		if string(before) != string(after) {
			t.Fatalf("RecomputeSelections mutated its input")
		}
		fj, _ := json.Marshal(first)
		sj, _ := json.Marshal(second)
		if string(fj) != string(sj) {
			t.Fatalf("RecomputeSelections drifted on re-run:\n%s\n%s", fj, sj)
		}
	})
}

func TestCatalogUseCase_Drafts(t *testing.T) {
	t.Run("invalid key", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		if err := uc.SaveDraft(context.Background(), "  ", nil); !errors.Is(err, ErrInvalidDraftKey) {
			t.Fatalf("expected ErrInvalidDraftKey, got %v", err)
		}
		if _, err := uc.LoadDraft(context.Background(), ""); !errors.Is(err, ErrInvalidDraftKey) {
			t.Fatalf("expected ErrInvalidDraftKey, got %v", err)
		}
	})

	t.Run("round trip is verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := NewCatalogUseCase(nil, drafts)

		sel := []entities.Selection{{CatalogItemID: "p1", Quantity: 2, UnitPrice: 80, Subtotal: 160, Identity: "vip"}}
		var stored []entities.Selection
		drafts.EXPECT().Save(gomock.Any(), "till-3", sel).DoAndReturn(
			func(_ context.Context, _ string, s []entities.Selection) error {
				stored = s
				return nil
			})
		drafts.EXPECT().Load(gomock.Any(), "till-3").DoAndReturn(
			func(_ context.Context, _ string) ([]entities.Selection, error) {
				return stored, nil
			})

		if err := uc.SaveDraft(context.Background(), "till-3", sel); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := uc.LoadDraft(context.Background(), "till-3")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		a, _ := json.Marshal(sel)
		b, _ := json.Marshal(got)
		if string(a) != string(b) {
			t.Fatalf("draft round trip lost data:\n%s\n%s", a, b)
		}
	})
}
