package repairorders

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("repair order not found")

type Repo interface {
	Create(ctx context.Context, ro RepairOrder) error
	GetByID(ctx context.Context, roID string) (RepairOrder, error)
	ListByShop(ctx context.Context, shopID string, limit, offset int) ([]RepairOrder, error)
	UpdateStatus(ctx context.Context, roID, status string) (RepairOrder, error)
}
