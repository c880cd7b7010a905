package dvi

import (
	"context"
	"errors"
	"testing"
)

func setupTemplate(t *testing.T, svc *Service) Template {
	t.Helper()
	tpl, err := svc.CreateTemplate(context.Background(), Template{
		ShopID: "shop-1",
		Name:   "Courtesy Check",
		Items: []TemplateItem{
			{Label: "Brake pads", Category: "brakes"},
			{Label: "Tire tread", Category: "tires"},
		},
	})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}
	return tpl
}

func TestCreateTemplateRequiresItems(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	_, err := svc.CreateTemplate(context.Background(), Template{ShopID: "shop-1", Name: "Empty"})
	if err == nil {
		t.Fatal("expected error for empty template")
	}
}

func TestReportLifecycle(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	tpl := setupTemplate(t, svc)
	ctx := context.Background()

	rep, err := svc.CreateReport(ctx, Report{ShopID: "shop-1", TemplateID: tpl.ID, RepairOrderID: "ro-1"})
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if rep.Status != ReportStatusDraft {
		t.Fatalf("status = %q, want draft", rep.Status)
	}

	results := []ReportItem{
		{Label: "Brake pads", Status: ItemAttention, Note: "3mm remaining"},
		{Label: "Tire tread", Status: ItemPass},
	}
	rep, err = svc.UpdateReport(ctx, rep.ID, results, ReportStatusSent)
	if err != nil {
		t.Fatalf("UpdateReport: %v", err)
	}
	if rep.Status != ReportStatusSent || len(rep.Results) != 2 {
		t.Fatalf("report = %+v", rep)
	}

	// Sent reports are frozen.
	if _, err := svc.UpdateReport(ctx, rep.ID, nil, ReportStatusDraft); err == nil {
		t.Fatal("expected error updating a sent report")
	}
}

func TestCreateReportUnknownTemplate(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	_, err := svc.CreateReport(context.Background(), Report{ShopID: "shop-1", TemplateID: "nope"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateReportRejectsBadItemStatus(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	tpl := setupTemplate(t, svc)
	rep, err := svc.CreateReport(context.Background(), Report{ShopID: "shop-1", TemplateID: tpl.ID})
	if err != nil {
		t.Fatal(err)
	}
	_, err = svc.UpdateReport(context.Background(), rep.ID, []ReportItem{{Label: "Brake pads", Status: "broken"}}, "")
	if err == nil {
		t.Fatal("expected error for invalid item status")
	}
}
