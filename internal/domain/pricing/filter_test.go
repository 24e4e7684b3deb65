package pricing

import (
	"testing"

	"clinic_pos/internal/domain/entities"
)

func TestMatchesIdentity(t *testing.T) {
	item := func(tiers entities.PriceTierTable, base string) entities.CatalogItem {
		return entities.CatalogItem{ID: "i1", Name: "Massage", PriceTiers: tiers, BasePrice: entities.FlexPrice(base)}
	}

	t.Run("all passes any visible item", func(t *testing.T) {
		it := item(entities.PriceTierTable{"vip": "80"}, "")
		if !MatchesIdentity(it, entities.IdentityAll, nil) {
			t.Fatalf("expected match")
		}
	})

	t.Run("specific identity must be supported", func(t *testing.T) {
		it := item(entities.PriceTierTable{"vip": "80"}, "")
		if !MatchesIdentity(it, "vip", nil) {
			t.Fatalf("expected vip to match")
		}
		if MatchesIdentity(it, "staff", nil) {
			t.Fatalf("expected staff not to match")
		}
	})

	t.Run("base price grants general", func(t *testing.T) {
		it := item(nil, "100")
		if !MatchesIdentity(it, entities.IdentityGeneral, nil) {
			t.Fatalf("expected general to match")
		}
	})

	t.Run("restricted identities are invisible", func(t *testing.T) {
		it := item(entities.PriceTierTable{"vip": "80"}, "")
		restricted := entities.NewIdentitySet("vip")
		if MatchesIdentity(it, "vip", restricted) {
			t.Fatalf("restricted identity must not match")
		}
		// The item's only visible identity is restricted, so even "all"
		// must not surface it.
		if MatchesIdentity(it, entities.IdentityAll, restricted) {
			t.Fatalf("item with only restricted identities must not match all")
		}
	})

	t.Run("restriction removes one tier but keeps the rest", func(t *testing.T) {
		it := item(entities.PriceTierTable{"vip": "80", "member": "90"}, "")
		restricted := entities.NewIdentitySet("vip")
		if !MatchesIdentity(it, "member", restricted) {
			t.Fatalf("expected member to match")
		}
		if !MatchesIdentity(it, entities.IdentityAll, restricted) {
			t.Fatalf("expected all to match via member")
		}
	})
}
