package entities

// CatalogItemType distinguishes plain products from bundles-of-products sold
// as one unit at a package price.
type CatalogItemType string

const (
	CatalogItemTypeProduct CatalogItemType = "product"
	CatalogItemTypeBundle  CatalogItemType = "bundle"
)

// PriceTierTable maps identity labels to prices. It is sparse: any subset of
// known identities may be present, and "general" acts as the fallback entry.
type PriceTierTable map[Identity]FlexPrice

// CatalogItem is a sellable thing for one domain. Fetched once per page
// load, re-read on identity changes only for re-pricing, never mutated.
type CatalogItem struct {
	ID         string          `json:"id"`
	Domain     SaleDomain      `json:"domain"`
	Name       string          `json:"name"`
	Type       CatalogItemType `json:"type"`
	BasePrice  FlexPrice       `json:"base_price,omitempty"`
	PriceTiers PriceTierTable  `json:"price_tiers,omitempty"`
	Categories []string        `json:"categories,omitempty"`
	Contents   *BundleContents `json:"contents,omitempty"`
}
