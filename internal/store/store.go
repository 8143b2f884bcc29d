// Package store provides the in-memory catalog and account state shared by
// cart and checkout operations. Products and customers live behind a single
// mutex so a checkout can validate and mutate both as one critical section;
// see Update.
package store

import (
	"sort"
	"sync"

	"github.com/shoplite/checkout/internal/domain"
	apperrors "github.com/shoplite/checkout/pkg/errors"
)

// Store holds the product catalog and customer accounts for the lifetime of
// the process. Products and customers are never deleted during a session.
type Store struct {
	mu        sync.RWMutex
	products  map[string]*domain.Product
	customers map[string]*domain.Customer
}

// New creates an empty store.
func New() *Store {
	return &Store{
		products:  make(map[string]*domain.Product),
		customers: make(map[string]*domain.Customer),
	}
}

// Tx is a view of the store contents, valid only inside a View or Update
// closure. Pointers obtained from a Tx must not escape the closure.
type Tx struct {
	store *Store
}

// Product returns the live product with the given name.
func (tx *Tx) Product(name string) (*domain.Product, error) {
	p, ok := tx.store.products[name]
	if !ok {
		return nil, apperrors.NotFound("product", name)
	}
	return p, nil
}

// Customer returns the live customer account with the given ID.
func (tx *Tx) Customer(id string) (*domain.Customer, error) {
	c, ok := tx.store.customers[id]
	if !ok {
		return nil, apperrors.NotFound("customer", id)
	}
	return c, nil
}

// PutProduct inserts or replaces a product in the catalog.
func (tx *Tx) PutProduct(p *domain.Product) {
	tx.store.products[p.Name] = p
}

// PutCustomer inserts or replaces a customer account.
func (tx *Tx) PutCustomer(c *domain.Customer) {
	tx.store.customers[c.ID] = c
}

// Products returns copies of all catalog products, sorted by name.
func (tx *Tx) Products() []domain.Product {
	out := make([]domain.Product, 0, len(tx.store.products))
	for _, p := range tx.store.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// View runs fn under the read lock. fn must not mutate store state.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{store: s})
}

// Update runs fn under the write lock. All validation and mutation inside fn
// executes as one atomic section against the catalog and accounts; if fn
// returns an error having mutated nothing, the store is untouched. Callers
// are expected to complete every validation before the first mutation.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{store: s})
}
