package domain

import (
	apperrors "github.com/shoplite/checkout/pkg/errors"
)

// Customer holds a named account with a spendable balance. The balance never
// goes negative; it is only reduced by successful checkout debits.
type Customer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// Debit atomically reduces the balance by amount. It fails without mutation
// when the amount exceeds the current balance; there is no partial debit.
func (c *Customer) Debit(amount float64) error {
	if amount < 0 {
		return apperrors.InvalidInput("debit amount must not be negative")
	}
	if amount > c.Balance {
		return apperrors.InsufficientFunds(amount, c.Balance)
	}
	c.Balance -= amount
	return nil
}

// Credit increases the balance by amount (top-ups).
func (c *Customer) Credit(amount float64) error {
	if amount < 0 {
		return apperrors.InvalidInput("credit amount must not be negative")
	}
	c.Balance += amount
	return nil
}
