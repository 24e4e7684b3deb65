package entities

import "strings"

// BundleDescriptor is the decoded bundle metadata for a sale row: which
// bundle the row belongs to, how many bundles were purchased and what the
// whole bundle cost. It is both the typed side-channel carried by new rows
// (SaleLineItem.BundleRef) and the structure recovered from legacy note
// encodings by the bundlemeta codec.
//
// All fields are optional. Quantity 0 means "not specified" and is read as 1
// through EffectiveQuantity. Total "" means the bundle price was not recorded
// on this row.
type BundleDescriptor struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name,omitempty"`
	Quantity int       `json:"quantity,omitempty"`
	Total    FlexPrice `json:"total,omitempty"`
	Note     string    `json:"note,omitempty"`
}

// IsZero reports whether no descriptor field survived decoding. The codec
// returns nil instead of a zero descriptor, but defensively-copied values may
// still need the check.
func (d BundleDescriptor) IsZero() bool {
	return d.ID == "" && d.Name == "" && d.Quantity == 0 && d.Total.IsAbsent()
}

// EffectiveQuantity is the number of bundles purchased, defaulting to 1.
func (d BundleDescriptor) EffectiveQuantity() int {
	if d.Quantity > 0 {
		return d.Quantity
	}
	return 1
}

// BundleComponent is one name→quantity pair of a bundle's fixed composition.
type BundleComponent struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// BundleContents is the catalog-side composition of a bundle, used to
// validate per-bundle quantity derivation during aggregation.
type BundleContents struct {
	BundleID   string            `json:"bundle_id"`
	Components []BundleComponent `json:"components"`
}

// ComponentQuantity returns the per-bundle quantity of the named component.
// Matching is case-insensitive on the trimmed name.
func (c BundleContents) ComponentQuantity(name string) (int, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, comp := range c.Components {
		if strings.ToLower(strings.TrimSpace(comp.Name)) == want {
			return comp.Quantity, true
		}
	}
	return 0, false
}
