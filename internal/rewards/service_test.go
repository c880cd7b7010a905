package rewards

import (
	"context"
	"errors"
	"testing"
)

func setupCustomer(t *testing.T, svc *Service) Customer {
	t.Helper()
	cust, err := svc.CreateCustomer(context.Background(), Customer{ShopID: "shop-1", Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}
	return cust
}

func TestEarnAndRedeem(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	cust := setupCustomer(t, svc)

	cust, err := svc.Earn(context.Background(), "shop-1", cust.ID, 450, "repair order completed", "ro-1")
	if err != nil {
		t.Fatalf("Earn: %v", err)
	}
	if cust.PointsBalance != 450 {
		t.Fatalf("balance = %d, want 450", cust.PointsBalance)
	}

	cust, err = svc.Redeem(context.Background(), "shop-1", cust.ID, 200, "oil change discount")
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if cust.PointsBalance != 250 {
		t.Fatalf("balance = %d, want 250", cust.PointsBalance)
	}
}

func TestRedeemInsufficientPointsRejectedAtomically(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	cust := setupCustomer(t, svc)

	if _, err := svc.Earn(context.Background(), "shop-1", cust.ID, 100, "earn", ""); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Redeem(context.Background(), "shop-1", cust.ID, 101, "too much")
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("err = %v, want ErrInsufficientPoints", err)
	}

	after, err := svc.GetCustomer(context.Background(), cust.ID)
	if err != nil {
		t.Fatal(err)
	}
	if after.PointsBalance != 100 {
		t.Fatalf("balance = %d, want 100 (unchanged)", after.PointsBalance)
	}
	history, err := svc.History(context.Background(), cust.ID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 {
		t.Fatalf("ledger entries = %d, want 1 (failed redemption not recorded)", len(history))
	}
}

func TestEarnRejectsNonPositivePoints(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	cust := setupCustomer(t, svc)
	if _, err := svc.Earn(context.Background(), "shop-1", cust.ID, 0, "nothing", ""); err == nil {
		t.Fatal("expected error for zero points")
	}
	if _, err := svc.Redeem(context.Background(), "shop-1", cust.ID, -5, "negative"); err == nil {
		t.Fatal("expected error for negative points")
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	cust := setupCustomer(t, svc)
	for i := int64(1); i <= 3; i++ {
		if _, err := svc.Earn(context.Background(), "shop-1", cust.ID, i*10, "earn", ""); err != nil {
			t.Fatal(err)
		}
	}
	history, err := svc.History(context.Background(), cust.ID, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Fatalf("entries = %d, want 2", len(history))
	}
}
