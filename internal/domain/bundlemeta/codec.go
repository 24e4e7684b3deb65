// Package bundlemeta recovers bundle descriptors from sale rows.
//
// Historically the backend had no column for bundle metadata, so the selling
// UI smuggled it into the free-text note field. Two encodings are in the
// wild:
//
//	[[bundle_meta {"id":"b-7","qty":2,"total":1200,"name":"Relax Pack"}]]
//	[bundle:b-7|qty:2|total:1,200|name:Relax Pack]
//
// New rows carry the same descriptor as a typed field
// (entities.SaleLineItem.BundleRef); the note encodings remain supported as
// the migration path for existing data.
package bundlemeta

import (
	"encoding/json"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"clinic_pos/internal/domain/entities"
)

var (
	structuredTagRe = regexp.MustCompile(`(?is)\[\[\s*bundle_meta\s+(\{.*?\})\s*\]\]`)
	legacyTagRe     = regexp.MustCompile(`(?i)\[\s*bundle\s*:\s*([^\[\]]+)\]`)
)

// Decode recovers a bundle descriptor from a raw note. The structured tag is
// tried first and wins when both encodings are present. Malformed metadata is
// never an error for the caller: it is logged and the row is treated as a
// standalone, non-bundled sale (nil descriptor).
func Decode(note string) *entities.BundleDescriptor {
	if note == "" {
		return nil
	}
	if m := structuredTagRe.FindStringSubmatch(note); m != nil {
		if d := decodeStructured(m[1]); d != nil {
			d.Note = CleanNote(note)
			return d
		}
	}
	if m := legacyTagRe.FindStringSubmatch(note); m != nil {
		if d := decodeLegacy(m[1]); d != nil {
			d.Note = CleanNote(note)
			return d
		}
	}
	return nil
}

// DescriptorFor resolves the descriptor and cleaned note for a row. The
// typed BundleRef takes precedence over anything embedded in the note.
func DescriptorFor(item entities.SaleLineItem) (*entities.BundleDescriptor, string) {
	cleaned := CleanNote(item.Note)
	if item.BundleRef != nil && !item.BundleRef.IsZero() {
		d := *item.BundleRef
		if d.Note == "" {
			d.Note = cleaned
		}
		return &d, cleaned
	}
	return Decode(item.Note), cleaned
}

// Encode renders the structured tag for a descriptor, for embedding into a
// note next to its human-readable text. Encode(d) survives Decode unchanged.
func Encode(d entities.BundleDescriptor) string {
	payload := struct {
		ID    string  `json:"id,omitempty"`
		Name  string  `json:"name,omitempty"`
		Qty   int     `json:"qty,omitempty"`
		Total float64 `json:"total,omitempty"`
	}{ID: d.ID, Name: d.Name, Qty: d.Quantity}
	if v, ok := d.Total.Float(); ok {
		payload.Total = v
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return "[[bundle_meta " + string(b) + "]]"
}

// CleanNote strips every recognized tag occurrence (both encodings,
// case-insensitive, global) and collapses internal whitespace. Nil-ish input
// yields the empty string. Idempotent: cleaning a cleaned note is a no-op.
func CleanNote(note string) string {
	if note == "" {
		return ""
	}
	s := structuredTagRe.ReplaceAllString(note, " ")
	s = legacyTagRe.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// ResolveGroupKey builds the grouping key for a row, with the fallback
// precedence made explicit by the key's kind: an order reference always wins,
// any bundle signal (descriptor fields or a leftover cleaned note) comes
// next, and a row with no grouping signal at all keys on its own id so it can
// never collide with another row.
func ResolveGroupKey(item entities.SaleLineItem, d *entities.BundleDescriptor, cleanedNote string) entities.GroupKey {
	if ref := strings.TrimSpace(item.OrderRef); ref != "" {
		return entities.GroupKey{Kind: entities.GroupKindOrder, OrderRef: ref}
	}
	if d != nil && !d.IsZero() {
		return entities.GroupKey{
			Kind:       entities.GroupKindBundle,
			BundleID:   d.ID,
			BundleName: d.Name,
			BundleQty:  d.Quantity,
			Note:       cleanedNote,
		}
	}
	if cleanedNote != "" {
		return entities.GroupKey{Kind: entities.GroupKindBundle, Note: cleanedNote}
	}
	return entities.GroupKey{Kind: entities.GroupKindSingleton, RowID: item.ID}
}

func decodeStructured(raw string) *entities.BundleDescriptor {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		log.Printf("[bundlemeta] malformed structured tag, ignoring: %v", err)
		return nil
	}

	d := &entities.BundleDescriptor{}
	for key, val := range fields {
		switch strings.ToLower(key) {
		case "id":
			d.ID = coerceString(val)
		case "name":
			d.Name = coerceString(val)
		case "qty", "quantity":
			if d.Quantity == 0 {
				d.Quantity = coerceInt(val)
			}
		case "total", "price":
			if d.Total.IsAbsent() {
				if v, ok := coerceFloat(val); ok {
					d.Total = entities.FlexPriceFrom(v)
				}
			}
		}
	}
	if d.IsZero() {
		return nil
	}
	return d
}

func decodeLegacy(ref string) *entities.BundleDescriptor {
	d := &entities.BundleDescriptor{}
	for i, segment := range strings.Split(ref, "|") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		key, value, found := strings.Cut(segment, ":")
		if !found {
			// A bare leading segment is the bundle id.
			if i == 0 {
				d.ID = segment
			}
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "id":
			d.ID = value
		case "name":
			d.Name = value
		case "qty", "quantity":
			if n, err := strconv.Atoi(stripThousands(value)); err == nil {
				d.Quantity = n
			}
		case "total", "price":
			if v, err := strconv.ParseFloat(stripThousands(value), 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
				d.Total = entities.FlexPriceFrom(v)
			}
		}
	}
	if d.IsZero() {
		return nil
	}
	return d
}

func stripThousands(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

func coerceString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func coerceInt(raw json.RawMessage) int {
	v, ok := coerceFloat(raw)
	if !ok {
		return 0
	}
	return int(v)
}

func coerceFloat(raw json.RawMessage) (float64, bool) {
	var v float64
	if err := json.Unmarshal(raw, &v); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.ParseFloat(stripThousands(strings.TrimSpace(s)), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	}
	return 0, false
}
