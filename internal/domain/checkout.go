package domain

import "time"

// ReceiptLine is one purchased line on the checkout receipt.
type ReceiptLine struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// ShipmentEntry is the grouped manifest entry for one shippable product:
// how many units ship and how much each unit weighs.
type ShipmentEntry struct {
	ProductName  string  `json:"product_name"`
	Units        int     `json:"units"`
	UnitWeightKG float64 `json:"unit_weight_kg"`
	TotalKG      float64 `json:"total_kg"`
}

// ShipmentManifest summarizes the physical goods leaving the warehouse for
// one checkout, grouped by product in cart order.
type ShipmentManifest struct {
	Entries       []ShipmentEntry `json:"entries"`
	TotalWeightKG float64         `json:"total_weight_kg"`
}

// IsEmpty reports whether nothing ships (a cart of non-physical goods).
func (m ShipmentManifest) IsEmpty() bool {
	return len(m.Entries) == 0
}

// BuildShipmentManifest groups parcels into per-product manifest entries,
// preserving first-seen order, and sums the aggregate weight.
func BuildShipmentManifest(parcels []Parcel) ShipmentManifest {
	var manifest ShipmentManifest
	index := make(map[string]int, len(parcels))

	for _, p := range parcels {
		if i, ok := index[p.ProductName]; ok {
			manifest.Entries[i].Units++
			manifest.Entries[i].TotalKG += p.WeightKG
		} else {
			index[p.ProductName] = len(manifest.Entries)
			manifest.Entries = append(manifest.Entries, ShipmentEntry{
				ProductName:  p.ProductName,
				Units:        1,
				UnitWeightKG: p.WeightKG,
				TotalKG:      p.WeightKG,
			})
		}
		manifest.TotalWeightKG += p.WeightKG
	}

	return manifest
}

// CheckoutResult is the structured outcome of a successful checkout, returned
// by value to the caller. Rendering it (console, HTTP response) is the
// reporter's concern.
type CheckoutResult struct {
	CustomerID   string           `json:"customer_id"`
	CartID       string           `json:"cart_id"`
	Lines        []ReceiptLine    `json:"lines"`
	Shipment     ShipmentManifest `json:"shipment"`
	Subtotal     float64          `json:"subtotal"`
	ShippingFee  float64          `json:"shipping_fee"`
	Total        float64          `json:"total"`
	BalanceAfter float64          `json:"balance_after"`
	CompletedAt  time.Time        `json:"completed_at"`
}
