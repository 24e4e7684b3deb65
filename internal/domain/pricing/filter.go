package pricing

import (
	"clinic_pos/internal/domain/entities"
)

// MatchesIdentity reports whether a catalog item is visible/sellable for the
// requested identity under a role-based restriction set.
//
// The restriction set models roles that must never see certain tiers (a
// therapist must not see or select restricted pricing). It is applied here,
// at listing time, and again at every re-pricing pass — never only at
// submission — so a restricted price can't leak into a selection made before
// the restriction was known.
func MatchesIdentity(item entities.CatalogItem, identity entities.Identity, restricted entities.IdentitySet) bool {
	visible := DeriveVisibleIdentities(item.PriceTiers, item.BasePrice)
	for id := range restricted {
		delete(visible, id)
	}
	if len(visible) == 0 {
		return false
	}
	if identity == entities.IdentityAll {
		return true
	}
	return visible.Has(identity)
}
