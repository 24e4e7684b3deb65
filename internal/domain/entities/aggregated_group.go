package entities

import (
	"fmt"
	"strings"
)

// GroupKind tags the grouping decision made for a set of sale rows. The
// fallback precedence (order-ref, then bundle signal, then the row itself)
// is explicit in the tag rather than implicit in key-string construction.
type GroupKind string

const (
	GroupKindOrder     GroupKind = "order"
	GroupKindBundle    GroupKind = "bundle"
	GroupKindSingleton GroupKind = "singleton"
)

// GroupKey identifies one logical order/bundle reconstructed from flat rows.
// Exactly the fields relevant to its Kind are set.
type GroupKey struct {
	Kind GroupKind `json:"kind"`

	// Kind == GroupKindOrder
	OrderRef string `json:"order_ref,omitempty"`

	// Kind == GroupKindBundle
	BundleID   string `json:"bundle_id,omitempty"`
	BundleName string `json:"bundle_name,omitempty"`
	BundleQty  int    `json:"bundle_qty,omitempty"`
	Note       string `json:"note,omitempty"`

	// Kind == GroupKindSingleton
	RowID string `json:"row_id,omitempty"`
}

// String renders a deterministic composite key. Callers use it for map
// grouping and stable presentation ordering; it is not persisted.
func (k GroupKey) String() string {
	switch k.Kind {
	case GroupKindOrder:
		return "order:" + k.OrderRef
	case GroupKindBundle:
		parts := []string{k.BundleID, k.BundleName}
		if k.BundleQty > 0 {
			parts = append(parts, fmt.Sprintf("x%d", k.BundleQty))
		}
		if k.Note != "" {
			parts = append(parts, k.Note)
		}
		return "bundle:" + strings.Join(parts, "|")
	default:
		return "row:" + k.RowID
	}
}

// AggregatedGroup is a display-level entity: one logical purchase rebuilt
// from its constituent rows.
//
// Invariants:
//   - FinalTotal equals the sum of constituent final prices (1e-6 relative
//     tolerance).
//   - For bundle groups, Quantity × UnitBundlePrice reproduces FinalTotal
//     within the same tolerance.
//
// Groups round-trip through JSON unchanged so callers can park selections in
// persisted draft state and feed them back in verbatim.
type AggregatedGroup struct {
	Key         GroupKey       `json:"key"`
	Items       []SaleLineItem `json:"items"`
	DisplayName string         `json:"display_name"`
	Note        string         `json:"note,omitempty"`

	// Quantity is the consolidated quantity: bundles purchased for bundle
	// groups, summed row quantities otherwise.
	Quantity        int     `json:"quantity"`
	OriginalTotal   float64 `json:"original_total"`
	DiscountTotal   float64 `json:"discount_total"`
	FinalTotal      float64 `json:"final_total"`
	UnitBundlePrice float64 `json:"unit_bundle_price,omitempty"`
}
