package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"clinic_pos/internal/domain/bundlemeta"
	"clinic_pos/internal/domain/entities"
	"clinic_pos/internal/domain/pricing"
	"clinic_pos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptySelection        = errors.New("empty selection")
	ErrInvalidSelectionQty   = errors.New("invalid selection quantity")
	ErrItemNotSellable       = errors.New("item not sellable for identity")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
	ErrInvalidPaymentPayload = errors.New("invalid payment payload")
)

// CheckoutCommand is a confirmed selection ready to be persisted as flat
// sale rows. Identity and the role-derived restriction set are explicit
// parameters: prices are re-resolved server-side, never trusted from the
// client's draft.
type CheckoutCommand struct {
	Domain        entities.SaleDomain
	Identity      entities.Identity
	Restricted    entities.IdentitySet
	Selections    []entities.Selection
	Buyer         string
	PaymentMethod string
	StaffName     string
	Note          string

	// PaymentPayload, when present, is forwarded to the payment gateway
	// after enrichment with the order reference and the recomputed total.
	PaymentPayload json.RawMessage
}

// CheckoutResult reports what was persisted and, when a payment was made,
// the provider outcome.
type CheckoutResult struct {
	OrderRef string                  `json:"order_ref,omitempty"`
	Items    []entities.SaleLineItem `json:"items"`
	Total    float64                 `json:"total"`

	PaymentID     string `json:"payment_id,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
}

// ICheckoutUseCase turns confirmed selections into persisted line items:
// one row per SKU, bundles expanded to their components with the bundle
// descriptor attached both as the typed field and as the structured note tag
// so that legacy readers keep working.
type ICheckoutUseCase interface {
	Checkout(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error)
}

type CheckoutUseCase struct {
	sales   interfaces.ISaleRepository
	catalog interfaces.ICatalogRepository
	gateway interfaces.IPaymentGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(sales interfaces.ISaleRepository, catalog interfaces.ICatalogRepository, gateway interfaces.IPaymentGateway) *CheckoutUseCase {
	return &CheckoutUseCase{sales: sales, catalog: catalog, gateway: gateway}
}

func (u *CheckoutUseCase) Checkout(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if len(cmd.Selections) == 0 {
		return CheckoutResult{}, ErrEmptySelection
	}
	if strings.TrimSpace(string(cmd.Identity)) == "" || cmd.Identity == entities.IdentityAll {
		return CheckoutResult{}, ErrInvalidIdentity
	}
	if cmd.Restricted.Has(cmd.Identity) {
		return CheckoutResult{}, ErrRestrictedIdentity
	}
	for _, sel := range cmd.Selections {
		if sel.Quantity <= 0 {
			return CheckoutResult{}, ErrInvalidSelectionQty
		}
	}

	lines, total, err := u.buildLines(ctx, cmd)
	if err != nil {
		return CheckoutResult{}, err
	}

	orderRef := ""
	if len(lines) > 1 {
		orderRef = uuid.NewString()
		for i := range lines {
			lines[i].OrderRef = orderRef
		}
	}

	if err := u.sales.CreateBatch(ctx, lines); err != nil {
		log.Printf("[checkout][usecase] persist failed order_ref=%s err=%v", orderRef, err)
		return CheckoutResult{}, err
	}
	log.Printf("[checkout][usecase] persisted rows=%d order_ref=%s total=%.2f", len(lines), orderRef, total)

	result := CheckoutResult{OrderRef: orderRef, Items: lines, Total: total}

	if len(cmd.PaymentPayload) > 0 {
		paymentID, status, err := u.charge(ctx, orderRef, total, cmd.PaymentPayload)
		if err != nil {
			return CheckoutResult{}, err
		}
		result.PaymentID = paymentID
		result.PaymentStatus = status
	}
	return result, nil
}

// buildLines expands selections into persisted rows with server-resolved
// prices. Bundles become one row per component; the bundle total is spread
// evenly per unit so the rows sum back to the package price.
func (u *CheckoutUseCase) buildLines(ctx context.Context, cmd CheckoutCommand) ([]entities.SaleLineItem, float64, error) {
	now := time.Now().UTC()
	var lines []entities.SaleLineItem
	total := 0.0

	for _, sel := range cmd.Selections {
		item, err := u.catalog.GetByID(ctx, sel.CatalogItemID)
		if err != nil {
			return nil, 0, err
		}
		if item.ID == "" || !pricing.MatchesIdentity(item, cmd.Identity, cmd.Restricted) {
			return nil, 0, ErrItemNotSellable
		}
		unitPrice, ok := pricing.ResolveUnitPrice(item.PriceTiers, item.BasePrice, cmd.Identity)
		if !ok {
			return nil, 0, ErrItemNotSellable
		}

		if item.Type == entities.CatalogItemTypeBundle && item.Contents != nil && len(item.Contents.Components) > 0 {
			bundleTotal := unitPrice * float64(sel.Quantity)
			lines = append(lines, u.expandBundle(item, sel, cmd, bundleTotal, now)...)
			total += bundleTotal
			continue
		}

		lineTotal := unitPrice * float64(sel.Quantity)
		lines = append(lines, entities.SaleLineItem{
			ID:            uuid.NewString(),
			Domain:        cmd.Domain,
			CatalogItemID: item.ID,
			ItemName:      item.Name,
			Quantity:      sel.Quantity,
			UnitPrice:     entities.FlexPriceFrom(unitPrice),
			FinalPrice:    entities.FlexPriceFrom(lineTotal),
			Note:          strings.TrimSpace(cmd.Note),
			Buyer:         cmd.Buyer,
			SoldAt:        now,
			PaymentMethod: cmd.PaymentMethod,
			StaffName:     cmd.StaffName,
		})
		total += lineTotal
	}
	return lines, total, nil
}

func (u *CheckoutUseCase) expandBundle(item entities.CatalogItem, sel entities.Selection, cmd CheckoutCommand, bundleTotal float64, now time.Time) []entities.SaleLineItem {
	desc := entities.BundleDescriptor{
		ID:       item.ID,
		Name:     item.Name,
		Quantity: sel.Quantity,
		Total:    entities.FlexPriceFrom(bundleTotal),
	}
	note := strings.TrimSpace(strings.TrimSpace(cmd.Note) + " " + bundlemeta.Encode(desc))

	totalUnits := 0
	for _, comp := range item.Contents.Components {
		totalUnits += comp.Quantity * sel.Quantity
	}
	perUnit := 0.0
	if totalUnits > 0 {
		perUnit = bundleTotal / float64(totalUnits)
	}

	rows := make([]entities.SaleLineItem, 0, len(item.Contents.Components))
	for _, comp := range item.Contents.Components {
		qty := comp.Quantity * sel.Quantity
		rows = append(rows, entities.SaleLineItem{
			ID:            uuid.NewString(),
			Domain:        cmd.Domain,
			CatalogItemID: item.ID,
			BundleRef:     &desc,
			ItemName:      comp.Name,
			Quantity:      qty,
			UnitPrice:     entities.FlexPriceFrom(perUnit),
			FinalPrice:    entities.FlexPriceFrom(perUnit * float64(qty)),
			Note:          note,
			Buyer:         cmd.Buyer,
			SoldAt:        now,
			PaymentMethod: cmd.PaymentMethod,
			StaffName:     cmd.StaffName,
		})
	}
	return rows
}

// charge enriches the caller payload the way the provider expects and
// creates the payment. The recomputed total is the source of truth for the
// amount, never the client payload.
func (u *CheckoutUseCase) charge(ctx context.Context, orderRef string, total float64, payload json.RawMessage) (string, string, error) {
	if u.gateway == nil {
		return "", "", ErrGatewayNotConfigured
	}
	if !json.Valid(payload) {
		return "", "", ErrInvalidPaymentPayload
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return "", "", ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok && orderRef != "" {
		reqMap["external_reference"] = orderRef
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("POS order %s", orderRef)
	}
	reqMap["transaction_amount"] = total
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return "", "", err
	}

	paymentID, status, _, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[checkout][usecase] payment gateway failed order_ref=%s err=%v", orderRef, err)
		return "", "", err
	}
	log.Printf("[checkout][usecase] payment created order_ref=%s provider_payment_id=%s status=%s", orderRef, paymentID, status)
	return paymentID, status, nil
}
