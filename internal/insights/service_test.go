package insights

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"autoshop-backend/internal/repairorders"
)

func TestMemorySummaryCountsOnlyCompletedOrders(t *testing.T) {
	repo := repairorders.NewMemoryRepo()
	roSvc := repairorders.NewService(repo, nil)
	ctx := context.Background()

	mkOrder := func(total, parts, labor float64, complete bool) {
		ro, err := roSvc.Create(ctx, repairorders.RepairOrder{
			ShopID:      "shop-1",
			TotalAmount: total,
			PartsCost:   parts,
			LaborCost:   labor,
		})
		if err != nil {
			t.Fatal(err)
		}
		if complete {
			if _, err := roSvc.UpdateStatus(ctx, ro.ID, repairorders.StatusCompleted); err != nil {
				t.Fatal(err)
			}
		}
	}
	mkOrder(450, 120, 330, true)
	mkOrder(150, 50, 100, true)
	mkOrder(999, 1, 1, false)

	svc := NewService(&MemoryStore{Orders: repo})
	sum, err := svc.Summary(ctx, "shop-1", time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.RepairOrderCount != 2 {
		t.Fatalf("count = %d, want 2", sum.RepairOrderCount)
	}
	if sum.TotalRevenue != 600 {
		t.Fatalf("revenue = %v, want 600", sum.TotalRevenue)
	}
	if sum.AvgTicket != 300 {
		t.Fatalf("avg ticket = %v, want 300", sum.AvgTicket)
	}
	if sum.PartsTotal != 170 || sum.LaborTotal != 430 {
		t.Fatalf("parts/labor = %v/%v", sum.PartsTotal, sum.LaborTotal)
	}
}

func TestSummaryRequiresShopID(t *testing.T) {
	svc := NewService(&MemoryStore{Orders: repairorders.NewMemoryRepo()})
	if _, err := svc.Summary(context.Background(), "", time.Time{}, time.Time{}); err == nil {
		t.Fatal("expected error for missing shop id")
	}
}

func TestPGSummaryAggregates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT").
		WithArgs("shop-1", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count", "revenue", "parts", "labor"}).
			AddRow(int64(4), 1200.0, 400.0, 700.0))

	store := &PGStore{DB: db}
	sum, err := store.Summary(context.Background(), "shop-1", from, to)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.AvgTicket != 300 {
		t.Fatalf("avg ticket = %v, want 300", sum.AvgTicket)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
