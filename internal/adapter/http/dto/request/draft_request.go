package request

import (
	"strings"

	"clinic_pos/internal/domain/entities"
)

type DraftSelectionRequest struct {
	CatalogItemID string  `json:"catalog_item_id" binding:"required"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Identity      string  `json:"identity"`
	Quantity      int     `json:"quantity" binding:"required"`
	UnitPrice     float64 `json:"unit_price"`
	Subtotal      float64 `json:"subtotal"`
}

// DraftRequest parks a till's in-progress selections under a key. The
// selection state is stored verbatim, including the prices resolved at pick
// time; recomputation happens on load or checkout, not on save.
type DraftRequest struct {
	Selections []DraftSelectionRequest `json:"selections"`
}

func (r DraftRequest) ResolveSelections() []entities.Selection {
	out := make([]entities.Selection, 0, len(r.Selections))
	for _, sel := range r.Selections {
		out = append(out, entities.Selection{
			CatalogItemID: strings.TrimSpace(sel.CatalogItemID),
			Name:          sel.Name,
			Type:          entities.CatalogItemType(sel.Type),
			Identity:      entities.Identity(sel.Identity),
			Quantity:      sel.Quantity,
			UnitPrice:     sel.UnitPrice,
			Subtotal:      sel.Subtotal,
		})
	}
	return out
}
