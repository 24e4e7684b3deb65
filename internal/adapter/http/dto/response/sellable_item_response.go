package response

import (
	"clinic_pos/internal/usecase"
)

type SellableItemResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	UnitPrice  float64  `json:"unit_price"`
	Categories []string `json:"categories,omitempty"`
}

func FromSellableItem(s usecase.SellableItem) SellableItemResponse {
	return SellableItemResponse{
		ID:         s.Item.ID,
		Name:       s.Item.Name,
		Type:       string(s.Item.Type),
		UnitPrice:  s.UnitPrice,
		Categories: s.Item.Categories,
	}
}

func FromSellableItems(items []usecase.SellableItem) []SellableItemResponse {
	out := make([]SellableItemResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSellableItem(s))
	}
	return out
}
