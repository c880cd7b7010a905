package repairorders

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu     sync.RWMutex
	orders map[string]RepairOrder
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{orders: make(map[string]RepairOrder)}
}

func (r *MemoryRepo) Create(ctx context.Context, ro RepairOrder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	ro.CreatedAt = now
	ro.UpdatedAt = now
	r.orders[ro.ID] = ro
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, roID string) (RepairOrder, error) {
	if err := ctx.Err(); err != nil {
		return RepairOrder{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ro, ok := r.orders[roID]
	if !ok {
		return RepairOrder{}, ErrNotFound
	}
	return ro, nil
}

func (r *MemoryRepo) ListByShop(ctx context.Context, shopID string, limit, offset int) ([]RepairOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []RepairOrder
	for _, ro := range r.orders {
		if ro.ShopID == shopID {
			out = append(out, ro)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, roID, status string) (RepairOrder, error) {
	if err := ctx.Err(); err != nil {
		return RepairOrder{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ro, ok := r.orders[roID]
	if !ok {
		return RepairOrder{}, ErrNotFound
	}
	ro.Status = status
	ro.UpdatedAt = time.Now().UTC()
	r.orders[roID] = ro
	return ro, nil
}
