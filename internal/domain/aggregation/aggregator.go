// Package aggregation regroups flat per-SKU sale rows into the logical
// orders and bundles a purchase was made of, and derives consolidated
// quantities and totals that reconcile with the underlying rows.
package aggregation

import (
	"log"
	"math"
	"strings"

	"clinic_pos/internal/domain/bundlemeta"
	"clinic_pos/internal/domain/entities"
)

// quantityTolerance bounds the disagreement allowed between per-bundle
// quantities derived from different rows of the same bundle.
const quantityTolerance = 1e-6

type member struct {
	item    entities.SaleLineItem
	desc    *entities.BundleDescriptor
	cleaned string
}

// Group partitions flat sale rows into logical purchase groups.
//
// Rows sharing an order reference always group together, whatever their
// bundle metadata says: an order may mix bundles and standalone products.
// Rows without an order reference group by their bundle signal; rows with no
// signal at all stay singletons. contents (bundle id → composition) is
// optional; without it, per-bundle quantity derivation degrades to the raw
// summed quantity.
//
// Group never mutates its inputs and is safe to re-run on the same rows:
// callers re-invoke it on every relevant state change.
func Group(items []entities.SaleLineItem, contents map[string]entities.BundleContents) []entities.AggregatedGroup {
	buckets := make(map[string][]member)
	var order []string

	for _, item := range items {
		desc, cleaned := bundlemeta.DescriptorFor(item)
		key := bundlemeta.ResolveGroupKey(item, desc, cleaned)
		ks := key.String()
		if _, seen := buckets[ks]; !seen {
			order = append(order, ks)
		}
		buckets[ks] = append(buckets[ks], member{item: item, desc: desc, cleaned: cleaned})
	}

	var groups []entities.AggregatedGroup
	for _, ks := range order {
		members := buckets[ks]
		key := bundlemeta.ResolveGroupKey(members[0].item, members[0].desc, members[0].cleaned)

		switch key.Kind {
		case entities.GroupKindOrder:
			groups = append(groups, buildOrderGroup(key, members, contents))
		case entities.GroupKindBundle:
			if allDescribed(members) {
				groups = append(groups, buildBundleGroup(key, members, contents))
				continue
			}
			// A shared note alone is not a grouping signal strong enough to
			// merge rows: without a descriptor each row stays its own group.
			for _, m := range members {
				single := entities.GroupKey{Kind: entities.GroupKindSingleton, RowID: m.item.ID}
				groups = append(groups, buildSimpleGroup(single, []member{m}))
			}
		default:
			groups = append(groups, buildSimpleGroup(key, members))
		}
	}
	return groups
}

// buildOrderGroup handles one order-reference partition. If every row
// decodes to the same bundle, the whole order is that bundle; otherwise it
// is a mixed multi-item order.
func buildOrderGroup(key entities.GroupKey, members []member, contents map[string]entities.BundleContents) entities.AggregatedGroup {
	if allDescribed(members) && sameBundleID(members) {
		return buildBundleGroup(key, members, contents)
	}
	return buildSimpleGroup(key, members)
}

// buildBundleGroup consolidates rows that belong to one bundle purchase.
func buildBundleGroup(key entities.GroupKey, members []member, contents map[string]entities.BundleContents) entities.AggregatedGroup {
	g := newGroup(key, members)

	rawSum := 0
	for _, m := range members {
		rawSum += m.item.Quantity
	}

	g.Quantity = rawSum
	if qty, ok := deriveBundleQuantity(members, contents); ok {
		g.Quantity = qty
	}

	g.DisplayName = bundleDisplayName(members)
	g.Note = joinDistinctNotes(members)
	fillTotals(&g, members)
	if g.Quantity > 0 && g.FinalTotal > 0 {
		g.UnitBundlePrice = g.FinalTotal / float64(g.Quantity)
	}
	return g
}

// buildSimpleGroup covers singletons and mixed multi-item orders: quantity
// is the plain sum, the name lists the distinct items.
func buildSimpleGroup(key entities.GroupKey, members []member) entities.AggregatedGroup {
	g := newGroup(key, members)

	for _, m := range members {
		g.Quantity += m.item.Quantity
	}
	if len(members) == 1 {
		g.DisplayName = memberDisplayName(members[0])
	} else {
		g.DisplayName = strings.Join(distinctNames(members), "\n")
	}
	g.Note = joinDistinctNotes(members)
	fillTotals(&g, members)
	return g
}

func newGroup(key entities.GroupKey, members []member) entities.AggregatedGroup {
	items := make([]entities.SaleLineItem, len(members))
	for i, m := range members {
		items[i] = m.item
	}
	return entities.AggregatedGroup{Key: key, Items: items}
}

// deriveBundleQuantity divides each row's quantity by its per-bundle
// component quantity from the bundle-contents catalog. All rows must agree
// within tolerance on how many bundles were purchased; a disagreement is a
// reconciliation mismatch and the caller falls back to the raw sum.
func deriveBundleQuantity(members []member, contents map[string]entities.BundleContents) (int, bool) {
	bundleID := members[0].desc.ID
	if bundleID == "" {
		return 0, false
	}
	comp, ok := contents[bundleID]
	if !ok {
		return 0, false
	}

	derived := math.NaN()
	for _, m := range members {
		perBundle, found := comp.ComponentQuantity(m.item.ItemName)
		if !found || perBundle <= 0 {
			return 0, false
		}
		q := float64(m.item.Quantity) / float64(perBundle)
		if math.IsNaN(derived) {
			derived = q
			continue
		}
		if math.Abs(q-derived) > quantityTolerance {
			log.Printf("[aggregation] bundle %s quantity mismatch across rows (%v vs %v), using raw sum", bundleID, derived, q)
			return 0, false
		}
	}
	if math.IsNaN(derived) || derived <= 0 {
		return 0, false
	}
	return int(math.Round(derived)), true
}

// memberFinalPrice applies the per-row price fallback chain. The chain runs
// per row, before summing, never on group totals: final price when recorded
// and positive, then unit×qty−discount, then unit×qty.
func memberFinalPrice(it entities.SaleLineItem) float64 {
	if v, ok := it.FinalPrice.Float(); ok && v > 0 {
		return v
	}
	unit, ok := it.UnitPrice.Float()
	if !ok {
		return 0
	}
	gross := unit * float64(it.Quantity)
	if d, ok := it.DiscountAmount.Float(); ok {
		if v := gross - d; v > 0 {
			return v
		}
	}
	if gross > 0 {
		return gross
	}
	return 0
}

func fillTotals(g *entities.AggregatedGroup, members []member) {
	for _, m := range members {
		final := memberFinalPrice(m.item)
		g.FinalTotal += final
		if unit, ok := m.item.UnitPrice.Float(); ok {
			g.OriginalTotal += unit * float64(m.item.Quantity)
		} else {
			g.OriginalTotal += final
		}
	}
	if d := g.OriginalTotal - g.FinalTotal; d > 0 {
		g.DiscountTotal = d
	}
}

func allDescribed(members []member) bool {
	for _, m := range members {
		if m.desc == nil || m.desc.IsZero() {
			return false
		}
	}
	return true
}

func sameBundleID(members []member) bool {
	first := members[0].desc.ID
	if first == "" {
		return false
	}
	for _, m := range members[1:] {
		if m.desc.ID != first {
			return false
		}
	}
	return true
}

func memberDisplayName(m member) string {
	if m.desc != nil && m.desc.Name != "" {
		return m.desc.Name
	}
	return m.item.ItemName
}

func bundleDisplayName(members []member) string {
	for _, m := range members {
		if m.desc != nil && m.desc.Name != "" {
			return m.desc.Name
		}
	}
	return memberDisplayName(members[0])
}

func distinctNames(members []member) []string {
	seen := make(map[string]struct{}, len(members))
	var names []string
	for _, m := range members {
		name := memberDisplayName(m)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func joinDistinctNotes(members []member) string {
	seen := make(map[string]struct{}, len(members))
	var notes []string
	for _, m := range members {
		if m.cleaned == "" {
			continue
		}
		if _, dup := seen[m.cleaned]; dup {
			continue
		}
		seen[m.cleaned] = struct{}{}
		notes = append(notes, m.cleaned)
	}
	return strings.Join(notes, "\n")
}
