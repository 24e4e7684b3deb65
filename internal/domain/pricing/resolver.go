// Package pricing resolves unit prices from sparse per-identity tier tables
// and decides which catalog items a given identity can see and buy.
package pricing

import (
	"clinic_pos/internal/domain/entities"
)

// ResolveUnitPrice picks the applicable unit price for an identity.
//
// Fallback order, first finite value wins:
//   - identity == "general": tiers["general"], then the base price
//   - otherwise: tiers[identity], then tiers["general"], then the base price
//
// ok=false means no price exists for this identity at all. Callers must
// exclude such items from sale rather than defaulting to zero.
func ResolveUnitPrice(tiers entities.PriceTierTable, fallback entities.FlexPrice, identity entities.Identity) (float64, bool) {
	if identity != entities.IdentityGeneral {
		if v, ok := tiers[identity].Float(); ok {
			return v, true
		}
	}
	if v, ok := tiers[entities.IdentityGeneral].Float(); ok {
		return v, true
	}
	return fallback.Float()
}

// DeriveVisibleIdentities returns the identities an item is visible to:
// every identity with a usable tier value, plus "general" whenever a base
// price exists even without an explicit general entry.
//
// A base price of exactly 0 still counts as present: visibility and
// sellability are separate decisions, and a zero-priced item is a real thing
// (bundled freebies). The result is never empty; with no price signal at all
// the item is at minimum generally priced.
func DeriveVisibleIdentities(tiers entities.PriceTierTable, fallback entities.FlexPrice) entities.IdentitySet {
	visible := make(entities.IdentitySet, len(tiers)+1)
	for id, price := range tiers {
		if _, ok := price.Float(); ok {
			visible[id] = struct{}{}
		}
	}
	if _, ok := fallback.Float(); ok {
		visible[entities.IdentityGeneral] = struct{}{}
	}
	if len(visible) == 0 {
		visible[entities.IdentityGeneral] = struct{}{}
	}
	return visible
}
