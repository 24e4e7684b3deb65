package entities

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidSaleDomain = errors.New("invalid sale domain")

// SaleDomain selects which sales data set a request operates on. Product and
// therapy sales share one reconstruction engine and differ only in storage.
type SaleDomain string

const (
	SaleDomainProduct SaleDomain = "product"
	SaleDomainTherapy SaleDomain = "therapy"
)

func ParseSaleDomain(s string) (SaleDomain, error) {
	switch SaleDomain(strings.ToLower(strings.TrimSpace(s))) {
	case SaleDomainProduct:
		return SaleDomainProduct, nil
	case SaleDomainTherapy:
		return SaleDomainTherapy, nil
	default:
		return "", ErrInvalidSaleDomain
	}
}

// SaleLineItem is one persisted sale row for a single SKU.
//
// Storage model (DynamoDB):
//   - PK: id
//   - rows belonging to one checkout share an order_ref
//
// A single customer purchase may be stored as several rows correlated by
// OrderRef and/or by bundle metadata. New rows carry the typed BundleRef;
// legacy rows embed the same descriptor inside the free-text Note and are
// recovered by the bundlemeta codec. Rows are immutable once fetched: the
// aggregator only builds derived groups, it never mutates sources.
type SaleLineItem struct {
	ID            string            `json:"id"`
	Domain        SaleDomain        `json:"domain"`
	OrderRef      string            `json:"order_ref,omitempty"`
	CatalogItemID string            `json:"catalog_item_id,omitempty"`
	BundleRef     *BundleDescriptor `json:"bundle_ref,omitempty"`

	ItemName       string    `json:"item_name"`
	Quantity       int       `json:"quantity"`
	UnitPrice      FlexPrice `json:"unit_price,omitempty"`
	DiscountAmount FlexPrice `json:"discount_amount,omitempty"`
	FinalPrice     FlexPrice `json:"final_price,omitempty"`
	Note           string    `json:"note,omitempty"`

	Buyer         string    `json:"buyer,omitempty"`
	SoldAt        time.Time `json:"sold_at"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	StaffName     string    `json:"staff_name,omitempty"`
}
