package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic_pos/internal/domain/entities"
	"clinic_pos/internal/domain/pricing"
	"clinic_pos/internal/usecase/interfaces"
)

var (
	ErrInvalidIdentity    = errors.New("invalid identity")
	ErrRestrictedIdentity = errors.New("identity restricted for this role")
	ErrInvalidDraftKey    = errors.New("invalid draft key")
)

// SellableItem is a catalog item that passed identity filtering together
// with the unit price resolved for the requesting identity.
type SellableItem struct {
	Item      entities.CatalogItem `json:"item"`
	UnitPrice float64              `json:"unit_price"`
}

// ICatalogUseCase exposes the selling side: which items an identity may buy,
// at what price, and the dataflow recomputation that keeps already-made
// selections honest when identity or catalog data change.
type ICatalogUseCase interface {
	ListSellable(ctx context.Context, domain entities.SaleDomain, identity entities.Identity, restricted entities.IdentitySet) ([]SellableItem, error)
	RecomputeSelections(selections []entities.Selection, catalog []entities.CatalogItem, identity entities.Identity, restricted entities.IdentitySet) []entities.Selection
	SaveDraft(ctx context.Context, key string, selections []entities.Selection) error
	LoadDraft(ctx context.Context, key string) ([]entities.Selection, error)
}

type CatalogUseCase struct {
	catalog interfaces.ICatalogRepository
	drafts  interfaces.IDraftRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.ICatalogRepository, drafts interfaces.IDraftRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, drafts: drafts}
}

// ListSellable returns the items visible and priced for an identity. Items
// with no resolvable price (a pricing gap) are excluded outright rather than
// listed at zero.
func (u *CatalogUseCase) ListSellable(ctx context.Context, domain entities.SaleDomain, identity entities.Identity, restricted entities.IdentitySet) ([]SellableItem, error) {
	if strings.TrimSpace(string(identity)) == "" {
		return nil, ErrInvalidIdentity
	}
	if identity != entities.IdentityAll && restricted.Has(identity) {
		return nil, ErrRestrictedIdentity
	}

	items, err := u.catalog.ListByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}

	sellable := make([]SellableItem, 0, len(items))
	for _, item := range items {
		if !pricing.MatchesIdentity(item, identity, restricted) {
			continue
		}
		price, ok := resolveFor(item, identity)
		if !ok {
			continue
		}
		sellable = append(sellable, SellableItem{Item: item, UnitPrice: price})
	}
	return sellable, nil
}

// RecomputeSelections re-resolves every selection against the given catalog
// and identity. Selections whose item vanished, stopped matching the
// identity under the restriction set, or lost its price are dropped. Pure:
// the input slice is never modified, and re-running on the same inputs
// yields the same output.
func (u *CatalogUseCase) RecomputeSelections(selections []entities.Selection, catalog []entities.CatalogItem, identity entities.Identity, restricted entities.IdentitySet) []entities.Selection {
	byID := make(map[string]entities.CatalogItem, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}

	out := make([]entities.Selection, 0, len(selections))
	for _, sel := range selections {
		item, found := byID[sel.CatalogItemID]
		if !found {
			continue
		}
		if !pricing.MatchesIdentity(item, identity, restricted) {
			continue
		}
		price, ok := resolveFor(item, identity)
		if !ok {
			continue
		}
		sel.Identity = identity
		sel.Name = item.Name
		sel.Type = item.Type
		sel.UnitPrice = price
		sel.Subtotal = price * float64(sel.Quantity)
		out = append(out, sel)
	}
	return out
}

func (u *CatalogUseCase) SaveDraft(ctx context.Context, key string, selections []entities.Selection) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidDraftKey
	}
	return u.drafts.Save(ctx, key, selections)
}

func (u *CatalogUseCase) LoadDraft(ctx context.Context, key string) ([]entities.Selection, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrInvalidDraftKey
	}
	return u.drafts.Load(ctx, key)
}

// resolveFor maps the "all" pseudo identity to the general price for
// display; any real identity resolves through the tier fallback chain.
func resolveFor(item entities.CatalogItem, identity entities.Identity) (float64, bool) {
	if identity == entities.IdentityAll {
		identity = entities.IdentityGeneral
	}
	return pricing.ResolveUnitPrice(item.PriceTiers, item.BasePrice, identity)
}
