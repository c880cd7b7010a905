package rewards

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu        sync.RWMutex
	customers map[string]Customer
	ledger    map[string][]Transaction
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		customers: make(map[string]Customer),
		ledger:    make(map[string][]Transaction),
	}
}

func (r *MemoryRepo) CreateCustomer(ctx context.Context, cust Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	cust.CreatedAt = now
	cust.UpdatedAt = now
	r.customers[cust.ID] = cust
	return nil
}

func (r *MemoryRepo) GetCustomer(ctx context.Context, customerID string) (Customer, error) {
	if err := ctx.Err(); err != nil {
		return Customer{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cust, ok := r.customers[customerID]
	if !ok {
		return Customer{}, ErrNotFound
	}
	return cust, nil
}

func (r *MemoryRepo) ListCustomers(ctx context.Context, shopID string) ([]Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Customer
	for _, cust := range r.customers {
		if cust.ShopID == shopID {
			out = append(out, cust)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) Adjust(ctx context.Context, tx Transaction) (Customer, error) {
	if err := ctx.Err(); err != nil {
		return Customer{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cust, ok := r.customers[tx.CustomerID]
	if !ok {
		return Customer{}, ErrNotFound
	}
	next := cust.PointsBalance + tx.Points
	if next < 0 {
		return Customer{}, ErrInsufficientPoints
	}
	cust.PointsBalance = next
	cust.UpdatedAt = time.Now().UTC()
	r.customers[tx.CustomerID] = cust
	r.ledger[tx.CustomerID] = append(r.ledger[tx.CustomerID], tx)
	return cust, nil
}

func (r *MemoryRepo) History(ctx context.Context, customerID string, limit int) ([]Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := r.ledger[customerID]
	out := make([]Transaction, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
