package insights

import (
	"context"
	"database/sql"
	"time"
)

type PGStore struct {
	DB *sql.DB
}

func (s *PGStore) Summary(ctx context.Context, shopID string, from, to time.Time) (Summary, error) {
	const query = `
SELECT
  COUNT(*),
  COALESCE(SUM(total_amount), 0),
  COALESCE(SUM(parts_cost), 0),
  COALESCE(SUM(labor_cost), 0)
FROM repair_orders
WHERE shop_id = $1
  AND status = 'completed'
  AND created_at >= $2
  AND created_at < $3`
	var sum Summary
	err := s.DB.QueryRowContext(ctx, query, shopID, from, to).Scan(
		&sum.RepairOrderCount,
		&sum.TotalRevenue,
		&sum.PartsTotal,
		&sum.LaborTotal,
	)
	if err != nil {
		return Summary{}, err
	}
	if sum.RepairOrderCount > 0 {
		sum.AvgTicket = sum.TotalRevenue / float64(sum.RepairOrderCount)
	}
	return sum, nil
}
