// Command checkout-demo seeds a small catalog, fills a cart, and runs a
// checkout end to end, printing the shipment notice and receipt. It runs
// entirely in process: no Redis, no Kafka.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shoplite/checkout/internal/domain"
	"github.com/shoplite/checkout/internal/report"
	"github.com/shoplite/checkout/internal/repository/memory"
	"github.com/shoplite/checkout/internal/service"
	"github.com/shoplite/checkout/internal/store"
	"github.com/shoplite/checkout/pkg/logger"
)

func main() {
	balance := flag.Float64("balance", 10000, "customer starting balance")
	logLevel := flag.String("log-level", "error", "log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.NewWithWriter("checkout-demo", *logLevel, os.Stderr)
	ctx := context.Background()
	now := time.Now()

	st := store.New()
	carts := memory.NewCartRepository()
	catalog := service.NewCatalogService(st, log)
	cart := service.NewCartService(st, carts, nil, log, time.Now)
	checkout := service.NewCheckoutService(st, carts, nil, log, time.Now)

	seed := []service.CreateProductInput{
		{
			Name:       "Cheese 400g",
			Price:      100,
			Stock:      5,
			Perishable: &domain.PerishableInfo{ExpiresAt: now.AddDate(0, 0, 5)},
			Shippable:  &domain.ShippableInfo{WeightKG: 0.2},
		},
		{
			Name:       "Biscuits 700g",
			Price:      150,
			Stock:      2,
			Perishable: &domain.PerishableInfo{ExpiresAt: now.AddDate(0, 0, 3)},
			Shippable:  &domain.ShippableInfo{WeightKG: 0.7},
		},
		{
			Name:      "TV",
			Price:     5000,
			Stock:     3,
			Shippable: &domain.ShippableInfo{WeightKG: 8},
		},
		{
			Name:  "Scratch Card",
			Price: 50,
			Stock: 10,
		},
	}
	for _, input := range seed {
		if _, err := catalog.CreateProduct(ctx, input); err != nil {
			fatalf("seed product %q: %v", input.Name, err)
		}
	}

	customer, err := catalog.CreateCustomer(ctx, service.CreateCustomerInput{
		ID:      "mahmoud",
		Name:    "Mahmoud",
		Balance: *balance,
	})
	if err != nil {
		fatalf("create customer: %v", err)
	}

	adds := []struct {
		product  string
		quantity int
	}{
		{"Cheese 400g", 2},
		{"Biscuits 700g", 1},
		{"TV", 1},
		{"Scratch Card", 1},
	}
	for _, a := range adds {
		if _, err := cart.AddItem(ctx, customer.ID, a.product, a.quantity); err != nil {
			fatalf("add %dx %s: %v", a.quantity, a.product, err)
		}
	}

	result, err := checkout.Checkout(ctx, customer.ID)
	if err != nil {
		fatalf("checkout: %v", err)
	}

	if err := report.Render(os.Stdout, result); err != nil {
		fatalf("render receipt: %v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
