package shops

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	shops map[string]Shop
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{shops: make(map[string]Shop)}
}

func (r *MemoryRepo) Create(ctx context.Context, shop Shop) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	shop.CreatedAt = now
	shop.UpdatedAt = now
	r.shops[shop.ID] = shop
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, shopID string) (Shop, error) {
	if err := ctx.Err(); err != nil {
		return Shop{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	shop, ok := r.shops[shopID]
	if !ok {
		return Shop{}, ErrNotFound
	}
	return shop, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Shop, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Shop, 0, len(r.shops))
	for _, shop := range r.shops {
		out = append(out, shop)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, shopID string, upd ShopUpdate) (Shop, error) {
	if err := ctx.Err(); err != nil {
		return Shop{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	shop, ok := r.shops[shopID]
	if !ok {
		return Shop{}, ErrNotFound
	}
	if upd.Name != nil {
		shop.Name = *upd.Name
	}
	if upd.Phone != nil {
		shop.Phone = *upd.Phone
	}
	if upd.Email != nil {
		shop.Email = *upd.Email
	}
	if upd.Address != nil {
		shop.Address = *upd.Address
	}
	shop.UpdatedAt = time.Now().UTC()
	r.shops[shopID] = shop
	return shop, nil
}
