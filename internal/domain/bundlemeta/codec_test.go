package bundlemeta

import (
	"math"
	"testing"

	"clinic_pos/internal/domain/entities"
)

func TestDecode_StructuredTag(t *testing.T) {
	t.Run("full descriptor round trip", func(t *testing.T) {
		in := entities.BundleDescriptor{ID: "b-7", Name: "Relax Pack", Quantity: 2, Total: entities.FlexPriceFrom(1200)}
		note := "gift for regular " + Encode(in)

		d := Decode(note)
		if d == nil {
			t.Fatalf("expected descriptor, got nil")
		}
		if d.ID != "b-7" || d.Name != "Relax Pack" || d.Quantity != 2 {
			t.Fatalf("unexpected descriptor: %+v", d)
		}
		if v, ok := d.Total.Float(); !ok || v != 1200 {
			t.Fatalf("unexpected total: %+v", d.Total)
		}
		if d.Note != "gift for regular" {
			t.Fatalf("unexpected cleaned note: %q", d.Note)
		}
	})

	t.Run("alias keys and string numbers", func(t *testing.T) {
		d := Decode(`[[bundle_meta {"id":42,"quantity":"3","price":"1,500.50"}]]`)
		if d == nil {
			t.Fatalf("expected descriptor, got nil")
		}
		if d.ID != "42" || d.Quantity != 3 {
			t.Fatalf("unexpected descriptor: %+v", d)
		}
		if v, ok := d.Total.Float(); !ok || v != 1500.50 {
			t.Fatalf("unexpected total: %+v", d.Total)
		}
	})

	t.Run("malformed json is treated as absent", func(t *testing.T) {
		if d := Decode(`[[bundle_meta {"id": }]]`); d != nil {
			t.Fatalf("expected nil, got %+v", d)
		}
	})

	t.Run("no surviving field is treated as absent", func(t *testing.T) {
		if d := Decode(`[[bundle_meta {"color":"red"}]]`); d != nil {
			t.Fatalf("expected nil, got %+v", d)
		}
	})

	t.Run("structured wins over legacy", func(t *testing.T) {
		d := Decode(`[bundle:legacy-id|qty:9] [[bundle_meta {"id":"new-id","qty":1}]]`)
		if d == nil || d.ID != "new-id" || d.Quantity != 1 {
			t.Fatalf("expected structured descriptor, got %+v", d)
		}
	})
}

func TestDecode_LegacyTag(t *testing.T) {
	t.Run("id with key value pairs", func(t *testing.T) {
		d := Decode("paid cash [bundle:b-3|qty: 2 |total:1,200|name: Detox Duo ]")
		if d == nil {
			t.Fatalf("expected descriptor, got nil")
		}
		if d.ID != "b-3" || d.Quantity != 2 || d.Name != "Detox Duo" {
			t.Fatalf("unexpected descriptor: %+v", d)
		}
		if v, ok := d.Total.Float(); !ok || v != 1200 {
			t.Fatalf("unexpected total: %+v", d.Total)
		}
		if d.Note != "paid cash" {
			t.Fatalf("unexpected cleaned note: %q", d.Note)
		}
	})

	t.Run("case insensitive keys", func(t *testing.T) {
		d := Decode("[BUNDLE: b-1 |QTY:4|Name:Spa Day]")
		if d == nil || d.ID != "b-1" || d.Quantity != 4 || d.Name != "Spa Day" {
			t.Fatalf("unexpected descriptor: %+v", d)
		}
	})

	t.Run("plain note decodes to nothing", func(t *testing.T) {
		if d := Decode("just a friendly note"); d != nil {
			t.Fatalf("expected nil, got %+v", d)
		}
		if d := Decode(""); d != nil {
			t.Fatalf("expected nil for empty note, got %+v", d)
		}
	})
}

func TestCleanNote(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "keep me", "keep me"},
		{"strips structured tag", `before [[bundle_meta {"id":"x"}]] after`, "before after"},
		{"strips legacy tag", "before [bundle:x|qty:1] after", "before after"},
		{"strips both and collapses whitespace", "a  [bundle:x]   b [[bundle_meta {\"id\":\"y\"}]]  c", "a b c"},
		{"case insensitive", "[Bundle:X] hello [[BUNDLE_META {\"id\":\"y\"}]]", "hello"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CleanNote(tc.in)
			if got != tc.want {
				t.Fatalf("CleanNote(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if again := CleanNote(got); again != got {
				t.Fatalf("CleanNote not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestCleanNote_NoResidualTagSyntax(t *testing.T) {
	notes := []string{
		`x [[bundle_meta {"id":"a","qty":2}]] y [bundle:b|total:3] z`,
		Encode(entities.BundleDescriptor{ID: "q", Quantity: 5}),
	}
	for _, n := range notes {
		got := CleanNote(n)
		if structuredTagRe.MatchString(got) || legacyTagRe.MatchString(got) {
			t.Fatalf("residual tag syntax in %q", got)
		}
	}
}

func TestEncode_NonFiniteTotalDropped(t *testing.T) {
	d := entities.BundleDescriptor{ID: "b-1", Total: entities.FlexPriceFrom(math.Inf(1))}
	got := Decode(Encode(d))
	if got == nil || got.ID != "b-1" {
		t.Fatalf("unexpected descriptor: %+v", got)
	}
	if !got.Total.IsAbsent() {
		t.Fatalf("expected absent total, got %q", got.Total)
	}
}

func TestDescriptorFor_TypedRefWins(t *testing.T) {
	item := entities.SaleLineItem{
		ID:        "row-1",
		Note:      `legacy [[bundle_meta {"id":"from-note"}]]`,
		BundleRef: &entities.BundleDescriptor{ID: "typed", Quantity: 2},
	}
	d, cleaned := DescriptorFor(item)
	if d == nil || d.ID != "typed" {
		t.Fatalf("expected typed descriptor to win, got %+v", d)
	}
	if cleaned != "legacy" {
		t.Fatalf("unexpected cleaned note: %q", cleaned)
	}
	if item.BundleRef.Note != "" {
		t.Fatalf("DescriptorFor mutated the source row")
	}
}

func TestResolveGroupKey(t *testing.T) {
	t.Run("order reference wins over descriptor", func(t *testing.T) {
		item := entities.SaleLineItem{ID: "r1", OrderRef: "ord-9"}
		d := &entities.BundleDescriptor{ID: "b-1"}
		key := ResolveGroupKey(item, d, "")
		if key.Kind != entities.GroupKindOrder || key.OrderRef != "ord-9" {
			t.Fatalf("unexpected key: %+v", key)
		}
	})

	t.Run("descriptor fields build a bundle key", func(t *testing.T) {
		item := entities.SaleLineItem{ID: "r1"}
		d := &entities.BundleDescriptor{ID: "b-1", Name: "Duo", Quantity: 2}
		key := ResolveGroupKey(item, d, "note")
		if key.Kind != entities.GroupKindBundle || key.BundleID != "b-1" || key.BundleQty != 2 {
			t.Fatalf("unexpected key: %+v", key)
		}
	})

	t.Run("cleaned note alone still keys", func(t *testing.T) {
		key := ResolveGroupKey(entities.SaleLineItem{ID: "r1"}, nil, "shared note")
		if key.Kind != entities.GroupKindBundle || key.Note != "shared note" {
			t.Fatalf("unexpected key: %+v", key)
		}
	})

	t.Run("no signal falls back to distinct row keys", func(t *testing.T) {
		k1 := ResolveGroupKey(entities.SaleLineItem{ID: "r1"}, nil, "")
		k2 := ResolveGroupKey(entities.SaleLineItem{ID: "r2"}, nil, "")
		if k1.Kind != entities.GroupKindSingleton || k2.Kind != entities.GroupKindSingleton {
			t.Fatalf("expected singleton keys: %+v %+v", k1, k2)
		}
		if k1.String() == k2.String() {
			t.Fatalf("singleton keys collide: %q", k1.String())
		}
	})
}
