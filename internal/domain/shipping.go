package domain

// RatePerKG is the flat shipping rate in currency units per kilogram.
const RatePerKG = 10.0

// Parcel is one physical unit handed to the shipping calculator. A cart line
// for a shippable product expands into Quantity parcels of the same product.
type Parcel struct {
	ProductName string  `json:"product_name"`
	WeightKG    float64 `json:"weight_kg"`
}

// CalculateShippingFee returns the fee for shipping the given parcels:
// total weight times RatePerKG, or 0 for no parcels. Pure function.
func CalculateShippingFee(parcels []Parcel) float64 {
	if len(parcels) == 0 {
		return 0
	}

	var totalWeight float64
	for _, p := range parcels {
		totalWeight += p.WeightKG
	}

	return totalWeight * RatePerKG
}
