package repairorders

import (
	"context"
	"errors"
	"testing"
)

type fakeRewards struct {
	earned []int64
	err    error
}

func (f *fakeRewards) Earn(ctx context.Context, shopID, customerID string, points int64, reason, repairOrderID string) error {
	if f.err != nil {
		return f.err
	}
	f.earned = append(f.earned, points)
	return nil
}

func createOrder(t *testing.T, svc *Service, ro RepairOrder) RepairOrder {
	t.Helper()
	if ro.ShopID == "" {
		ro.ShopID = "shop-1"
	}
	created, err := svc.Create(context.Background(), ro)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return created
}

func TestCreateDefaultsToOpen(t *testing.T) {
	svc := NewService(NewMemoryRepo(), nil)
	ro := createOrder(t, svc, RepairOrder{TotalAmount: 450})
	if ro.Status != StatusOpen {
		t.Fatalf("status = %q, want open", ro.Status)
	}
	if ro.ID == "" {
		t.Fatal("id not assigned")
	}
}

func TestCompletionCreditsWholeDollarsAsPoints(t *testing.T) {
	rewards := &fakeRewards{}
	svc := NewService(NewMemoryRepo(), rewards)
	ro := createOrder(t, svc, RepairOrder{CustomerID: "cust-1", TotalAmount: 450.75})

	updated, err := svc.UpdateStatus(context.Background(), ro.ID, StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Fatalf("status = %q", updated.Status)
	}
	if len(rewards.earned) != 1 || rewards.earned[0] != 450 {
		t.Fatalf("earned = %v, want [450]", rewards.earned)
	}
}

func TestCompletionWithoutCustomerSkipsPoints(t *testing.T) {
	rewards := &fakeRewards{}
	svc := NewService(NewMemoryRepo(), rewards)
	ro := createOrder(t, svc, RepairOrder{TotalAmount: 450})

	if _, err := svc.UpdateStatus(context.Background(), ro.ID, StatusCompleted); err != nil {
		t.Fatal(err)
	}
	if len(rewards.earned) != 0 {
		t.Fatalf("earned = %v, want none", rewards.earned)
	}
}

func TestRecompletionDoesNotDoubleCredit(t *testing.T) {
	rewards := &fakeRewards{}
	svc := NewService(NewMemoryRepo(), rewards)
	ro := createOrder(t, svc, RepairOrder{CustomerID: "cust-1", TotalAmount: 100})

	if _, err := svc.UpdateStatus(context.Background(), ro.ID, StatusCompleted); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UpdateStatus(context.Background(), ro.ID, StatusCompleted); err != nil {
		t.Fatal(err)
	}
	if len(rewards.earned) != 1 {
		t.Fatalf("credits = %d, want 1", len(rewards.earned))
	}
}

func TestRewardsFailureDoesNotBlockTransition(t *testing.T) {
	rewards := &fakeRewards{err: errors.New("ledger down")}
	svc := NewService(NewMemoryRepo(), rewards)
	ro := createOrder(t, svc, RepairOrder{CustomerID: "cust-1", TotalAmount: 100})

	updated, err := svc.UpdateStatus(context.Background(), ro.ID, StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Fatalf("status = %q", updated.Status)
	}
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	svc := NewService(NewMemoryRepo(), nil)
	ro := createOrder(t, svc, RepairOrder{})
	if _, err := svc.UpdateStatus(context.Background(), ro.ID, "done"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
