package request

import (
	"encoding/json"
	"errors"
	"strings"

	"clinic_pos/internal/domain/entities"
)

var (
	ErrInvalidSelection = errors.New("invalid selection")
)

type SelectionRequest struct {
	CatalogItemID string `json:"catalog_item_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required"`
}

// CheckoutRequest is the payload confirming a till's selections. Prices are
// intentionally absent: the server re-resolves every unit price for the
// requested identity, so a stale or tampered client total cannot leak into
// the persisted rows.
type CheckoutRequest struct {
	Domain               string             `json:"domain" binding:"required"`
	Identity             string             `json:"identity" binding:"required"`
	RestrictedIdentities []string           `json:"restricted_identities"`
	Selections           []SelectionRequest `json:"selections" binding:"required"`
	Buyer                string             `json:"buyer"`
	PaymentMethod        string             `json:"payment_method"`
	StaffName            string             `json:"staff_name"`
	Note                 string             `json:"note"`

	// MPPayload, when present, triggers a Mercado Pago charge for the
	// recomputed order total.
	MPPayload json.RawMessage `json:"mp_payload,omitempty"`
}

func (r CheckoutRequest) ResolveDomain() (entities.SaleDomain, error) {
	return entities.ParseSaleDomain(r.Domain)
}

func (r CheckoutRequest) ResolveIdentity() entities.Identity {
	return entities.Identity(strings.ToLower(strings.TrimSpace(r.Identity)))
}

func (r CheckoutRequest) ResolveRestricted() entities.IdentitySet {
	set := make(entities.IdentitySet, len(r.RestrictedIdentities))
	for _, raw := range r.RestrictedIdentities {
		if v := strings.ToLower(strings.TrimSpace(raw)); v != "" {
			set[entities.Identity(v)] = struct{}{}
		}
	}
	return set
}

func (r CheckoutRequest) ResolveSelections() ([]entities.Selection, error) {
	if len(r.Selections) == 0 {
		return nil, ErrInvalidSelection
	}
	out := make([]entities.Selection, 0, len(r.Selections))
	for _, sel := range r.Selections {
		id := strings.TrimSpace(sel.CatalogItemID)
		if id == "" || sel.Quantity <= 0 {
			return nil, ErrInvalidSelection
		}
		out = append(out, entities.Selection{CatalogItemID: id, Quantity: sel.Quantity})
	}
	return out, nil
}
