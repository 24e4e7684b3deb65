package pricing

import (
	"testing"

	"clinic_pos/internal/domain/entities"
)

func TestResolveUnitPrice(t *testing.T) {
	tiers := func(pairs map[entities.Identity]string) entities.PriceTierTable {
		tt := make(entities.PriceTierTable, len(pairs))
		for id, raw := range pairs {
			tt[id] = entities.FlexPrice(raw)
		}
		return tt
	}

	t.Run("general ignores non-general entries", func(t *testing.T) {
		tt := tiers(map[entities.Identity]string{"vip": "80", "general": "50"})
		v, ok := ResolveUnitPrice(tt, "100", entities.IdentityGeneral)
		if !ok || v != 50 {
			t.Fatalf("expected 50, got %v ok=%v", v, ok)
		}
	})

	t.Run("general falls back to base price", func(t *testing.T) {
		v, ok := ResolveUnitPrice(nil, "100", entities.IdentityGeneral)
		if !ok || v != 100 {
			t.Fatalf("expected 100, got %v ok=%v", v, ok)
		}
	})

	t.Run("specific tier wins", func(t *testing.T) {
		tt := tiers(map[entities.Identity]string{"vip": "80", "general": "50"})
		v, ok := ResolveUnitPrice(tt, "100", "vip")
		if !ok || v != 80 {
			t.Fatalf("expected 80, got %v ok=%v", v, ok)
		}
	})

	t.Run("missing tier falls back to general", func(t *testing.T) {
		tt := tiers(map[entities.Identity]string{"general": "50"})
		v, ok := ResolveUnitPrice(tt, "100", "vip")
		if !ok || v != 50 {
			t.Fatalf("expected 50, got %v ok=%v", v, ok)
		}
	})

	t.Run("no tiers falls back to base price", func(t *testing.T) {
		v, ok := ResolveUnitPrice(nil, "100", "vip")
		if !ok || v != 100 {
			t.Fatalf("expected 100, got %v ok=%v", v, ok)
		}
	})

	t.Run("everything absent reports no price", func(t *testing.T) {
		if _, ok := ResolveUnitPrice(entities.PriceTierTable{}, "", "vip"); ok {
			t.Fatalf("expected no price")
		}
	})

	t.Run("empty and junk tier values are skipped", func(t *testing.T) {
		tt := tiers(map[entities.Identity]string{"vip": "", "general": "abc"})
		v, ok := ResolveUnitPrice(tt, "75", "vip")
		if !ok || v != 75 {
			t.Fatalf("expected base price 75, got %v ok=%v", v, ok)
		}
	})
}

func TestDeriveVisibleIdentities(t *testing.T) {
	t.Run("tier entries plus general from base price", func(t *testing.T) {
		tt := entities.PriceTierTable{"vip": "80", "staff": "60"}
		got := DeriveVisibleIdentities(tt, "100")
		for _, id := range []entities.Identity{"vip", "staff", entities.IdentityGeneral} {
			if !got.Has(id) {
				t.Fatalf("expected %s visible, got %v", id, got)
			}
		}
		if len(got) != 3 {
			t.Fatalf("unexpected set: %v", got)
		}
	})

	t.Run("zero base price still grants general", func(t *testing.T) {
		got := DeriveVisibleIdentities(entities.PriceTierTable{}, "0")
		if len(got) != 1 || !got.Has(entities.IdentityGeneral) {
			t.Fatalf("expected {general}, got %v", got)
		}
	})

	t.Run("never empty", func(t *testing.T) {
		got := DeriveVisibleIdentities(nil, "")
		if len(got) != 1 || !got.Has(entities.IdentityGeneral) {
			t.Fatalf("expected {general}, got %v", got)
		}
	})

	t.Run("unusable tier values do not grant visibility", func(t *testing.T) {
		tt := entities.PriceTierTable{"vip": "", "staff": "n/a", "member": "40"}
		got := DeriveVisibleIdentities(tt, "")
		if got.Has("vip") || got.Has("staff") {
			t.Fatalf("unexpected visibility: %v", got)
		}
		if !got.Has("member") {
			t.Fatalf("expected member visible: %v", got)
		}
	})
}
