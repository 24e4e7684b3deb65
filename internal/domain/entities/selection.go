package entities

// Selection is one confirmed pick in the selling UI: a catalog item, a
// quantity and the unit price that was resolved for the active identity at
// pick time. Selections are what gets re-priced when the identity or the
// catalog changes, and what drafts persist verbatim.
type Selection struct {
	CatalogItemID string          `json:"catalog_item_id"`
	Name          string          `json:"name"`
	Type          CatalogItemType `json:"type"`
	Identity      Identity        `json:"identity"`
	Quantity      int             `json:"quantity"`
	UnitPrice     float64         `json:"unit_price"`
	Subtotal      float64         `json:"subtotal"`
}
