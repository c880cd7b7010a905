package insights

import (
	"context"
	"time"

	"autoshop-backend/internal/repairorders"
)

// OrdersSource is the slice of the repair-orders repo the in-memory store
// aggregates over.
type OrdersSource interface {
	ListByShop(ctx context.Context, shopID string, limit, offset int) ([]repairorders.RepairOrder, error)
}

type MemoryStore struct {
	Orders OrdersSource
}

func (s *MemoryStore) Summary(ctx context.Context, shopID string, from, to time.Time) (Summary, error) {
	orders, err := s.Orders.ListByShop(ctx, shopID, 0, 0)
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	for _, ro := range orders {
		if ro.Status != repairorders.StatusCompleted {
			continue
		}
		if ro.CreatedAt.Before(from) || !ro.CreatedAt.Before(to) {
			continue
		}
		sum.RepairOrderCount++
		sum.TotalRevenue += ro.TotalAmount
		sum.PartsTotal += ro.PartsCost
		sum.LaborTotal += ro.LaborCost
	}
	if sum.RepairOrderCount > 0 {
		sum.AvgTicket = sum.TotalRevenue / float64(sum.RepairOrderCount)
	}
	return sum, nil
}
