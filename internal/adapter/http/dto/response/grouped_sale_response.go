package response

import (
	"time"

	"clinic_pos/internal/domain/entities"
)

type SaleRowResponse struct {
	ID            string   `json:"id"`
	ItemName      string   `json:"item_name"`
	Quantity      int      `json:"quantity"`
	UnitPrice     *float64 `json:"unit_price,omitempty"`
	FinalPrice    *float64 `json:"final_price,omitempty"`
	Note          string   `json:"note,omitempty"`
	Buyer         string   `json:"buyer,omitempty"`
	SoldAt        string   `json:"sold_at,omitempty"`
	PaymentMethod string   `json:"payment_method,omitempty"`
	StaffName     string   `json:"staff_name,omitempty"`
}

type GroupedSaleResponse struct {
	Kind            string            `json:"kind"`
	GroupKey        string            `json:"group_key"`
	DisplayName     string            `json:"display_name"`
	Note            string            `json:"note,omitempty"`
	Quantity        int               `json:"quantity"`
	OriginalTotal   float64           `json:"original_total"`
	DiscountTotal   float64           `json:"discount_total"`
	FinalTotal      float64           `json:"final_total"`
	UnitBundlePrice float64           `json:"unit_bundle_price,omitempty"`
	Items           []SaleRowResponse `json:"items"`
}

func FromAggregatedGroup(g entities.AggregatedGroup) GroupedSaleResponse {
	items := make([]SaleRowResponse, 0, len(g.Items))
	for _, it := range g.Items {
		items = append(items, fromSaleRow(it))
	}
	return GroupedSaleResponse{
		Kind:            string(g.Key.Kind),
		GroupKey:        g.Key.String(),
		DisplayName:     g.DisplayName,
		Note:            g.Note,
		Quantity:        g.Quantity,
		OriginalTotal:   g.OriginalTotal,
		DiscountTotal:   g.DiscountTotal,
		FinalTotal:      g.FinalTotal,
		UnitBundlePrice: g.UnitBundlePrice,
		Items:           items,
	}
}

func FromAggregatedGroups(groups []entities.AggregatedGroup) []GroupedSaleResponse {
	out := make([]GroupedSaleResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, FromAggregatedGroup(g))
	}
	return out
}

func fromSaleRow(it entities.SaleLineItem) SaleRowResponse {
	resp := SaleRowResponse{
		ID:            it.ID,
		ItemName:      it.ItemName,
		Quantity:      it.Quantity,
		Note:          it.Note,
		Buyer:         it.Buyer,
		PaymentMethod: it.PaymentMethod,
		StaffName:     it.StaffName,
	}
	if !it.SoldAt.IsZero() {
		resp.SoldAt = it.SoldAt.UTC().Format(time.RFC3339Nano)
	}
	if v, ok := it.UnitPrice.Float(); ok {
		resp.UnitPrice = &v
	}
	if v, ok := it.FinalPrice.Float(); ok {
		resp.FinalPrice = &v
	}
	return resp
}
