package entities

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexPrice is a monetary field tolerant of the backend's mixed encodings.
// Persisted rows carry prices as JSON numbers, numeric strings, empty
// strings or null, and all of those must round-trip without loss.
//
// The zero value means "absent"; Float reports absence instead of
// defaulting to zero so callers can distinguish "no price" from "free".
type FlexPrice string

// FlexPriceFrom renders a float as the canonical numeric encoding.
func FlexPriceFrom(v float64) FlexPrice {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return FlexPrice(strconv.FormatFloat(v, 'f', -1, 64))
}

// Float coerces the raw token to a finite float64. Empty or whitespace-only
// tokens, unparsable text and non-finite results all report ok=false.
func (p FlexPrice) Float() (float64, bool) {
	s := strings.TrimSpace(string(p))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (p FlexPrice) IsAbsent() bool {
	_, ok := p.Float()
	return !ok
}

func (p *FlexPrice) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = FlexPrice(s)
		return nil
	}
	*p = FlexPrice(b)
	return nil
}

func (p FlexPrice) MarshalJSON() ([]byte, error) {
	if v, ok := p.Float(); ok {
		return json.Marshal(v)
	}
	return json.Marshal(string(p))
}
