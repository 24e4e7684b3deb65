package response

import (
	"clinic_pos/internal/usecase"
)

type CheckoutResponse struct {
	OrderRef string            `json:"order_ref,omitempty"`
	Total    float64           `json:"total"`
	Items    []SaleRowResponse `json:"items"`

	PaymentID     string `json:"payment_id,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
}

func FromCheckoutResult(res usecase.CheckoutResult) CheckoutResponse {
	items := make([]SaleRowResponse, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, fromSaleRow(it))
	}
	return CheckoutResponse{
		OrderRef:      res.OrderRef,
		Total:         res.Total,
		Items:         items,
		PaymentID:     res.PaymentID,
		PaymentStatus: res.PaymentStatus,
	}
}
