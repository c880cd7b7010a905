package rewards

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("customer not found")
	ErrInsufficientPoints = errors.New("insufficient points")
)

type Repo interface {
	CreateCustomer(ctx context.Context, cust Customer) error
	GetCustomer(ctx context.Context, customerID string) (Customer, error)
	ListCustomers(ctx context.Context, shopID string) ([]Customer, error)
	// Adjust applies a signed point delta and records the ledger entry in one
	// step. A negative delta that would take the balance below zero fails with
	// ErrInsufficientPoints and leaves both the balance and the ledger alone.
	Adjust(ctx context.Context, tx Transaction) (Customer, error)
	History(ctx context.Context, customerID string, limit int) ([]Transaction, error)
}
