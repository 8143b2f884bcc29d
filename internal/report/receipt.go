// Package report renders checkout results for human consumption. It is a
// pure consumer of domain.CheckoutResult; nothing in the core depends on it.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shoplite/checkout/internal/domain"
)

// Render writes the shipment notice (when anything ships) followed by the
// checkout receipt to w.
func Render(w io.Writer, result *domain.CheckoutResult) error {
	var b strings.Builder

	if !result.Shipment.IsEmpty() {
		b.WriteString("** Shipment notice **\n")
		for _, entry := range result.Shipment.Entries {
			fmt.Fprintf(&b, "%dx %s %.0fg\n", entry.Units, entry.ProductName, entry.UnitWeightKG*1000)
		}
		fmt.Fprintf(&b, "Total package weight %.1fkg\n", result.Shipment.TotalWeightKG)
		b.WriteString("\n")
	}

	b.WriteString("** Checkout receipt **\n")
	for _, line := range result.Lines {
		fmt.Fprintf(&b, "%dx %s %.0f\n", line.Quantity, line.ProductName, line.LineTotal)
	}
	b.WriteString("----------------------\n")
	fmt.Fprintf(&b, "Subtotal %.0f\n", result.Subtotal)
	fmt.Fprintf(&b, "Shipping %.0f\n", result.ShippingFee)
	fmt.Fprintf(&b, "Amount %.0f\n", result.Total)
	fmt.Fprintf(&b, "Customer balance after payment: %.0f\n", result.BalanceAfter)

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderString renders the report to a string.
func RenderString(result *domain.CheckoutResult) string {
	var b strings.Builder
	_ = Render(&b, result)
	return b.String()
}
