package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/checkout/internal/domain"
	apperrors "github.com/shoplite/checkout/pkg/errors"
)

func TestStore_PutAndGet(t *testing.T) {
	s := New()

	err := s.Update(func(tx *Tx) error {
		tx.PutProduct(&domain.Product{Name: "TV", Price: 5000, Stock: 3})
		tx.PutCustomer(&domain.Customer{ID: "c1", Name: "Mahmoud", Balance: 10000})
		return nil
	})
	require.NoError(t, err)

	err = s.View(func(tx *Tx) error {
		p, err := tx.Product("TV")
		require.NoError(t, err)
		assert.Equal(t, 5000.0, p.Price)

		c, err := tx.Customer("c1")
		require.NoError(t, err)
		assert.Equal(t, 10000.0, c.Balance)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_NotFound(t *testing.T) {
	s := New()

	err := s.View(func(tx *Tx) error {
		_, err := tx.Product("missing")
		return err
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = s.View(func(tx *Tx) error {
		_, err := tx.Customer("missing")
		return err
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_Products_Sorted(t *testing.T) {
	s := New()

	require.NoError(t, s.Update(func(tx *Tx) error {
		tx.PutProduct(&domain.Product{Name: "TV"})
		tx.PutProduct(&domain.Product{Name: "Biscuits 700g"})
		tx.PutProduct(&domain.Product{Name: "Cheese 400g"})
		return nil
	}))

	var names []string
	require.NoError(t, s.View(func(tx *Tx) error {
		for _, p := range tx.Products() {
			names = append(names, p.Name)
		}
		return nil
	}))

	assert.Equal(t, []string{"Biscuits 700g", "Cheese 400g", "TV"}, names)
}

func TestStore_Update_ErrorPropagates(t *testing.T) {
	s := New()
	sentinel := errors.New("boom")

	err := s.Update(func(tx *Tx) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}

func TestStore_ConcurrentUpdates_Serialized(t *testing.T) {
	s := New()
	require.NoError(t, s.Update(func(tx *Tx) error {
		tx.PutProduct(&domain.Product{Name: "TV", Price: 5000, Stock: 1000})
		return nil
	}))

	// 100 goroutines each reduce stock by 1 inside an Update; the mutex
	// serializes them, so no decrement is lost.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(func(tx *Tx) error {
				p, err := tx.Product("TV")
				if err != nil {
					return err
				}
				return p.ReduceStock(1)
			})
		}()
	}
	wg.Wait()

	require.NoError(t, s.View(func(tx *Tx) error {
		p, err := tx.Product("TV")
		require.NoError(t, err)
		assert.Equal(t, 900, p.Stock)
		return nil
	}))
}
