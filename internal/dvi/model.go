package dvi

import "time"

const (
	ReportStatusDraft = "draft"
	ReportStatusSent  = "sent"
)

const (
	ItemPass      = "pass"
	ItemFail      = "fail"
	ItemAttention = "attention"
)

// TemplateItem is one line on an inspection checklist.
type TemplateItem struct {
	Label    string `json:"label"`
	Category string `json:"category,omitempty"`
}

// Template is a shop's reusable inspection checklist.
type Template struct {
	ID        string         `json:"id"`
	ShopID    string         `json:"shopId"`
	Name      string         `json:"name"`
	Items     []TemplateItem `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ReportItem is one inspected line with its outcome.
type ReportItem struct {
	Label  string `json:"label"`
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// Report is a filled-in inspection for a repair order. It stays a draft until
// the shop sends it to the customer.
type Report struct {
	ID            string       `json:"id"`
	ShopID        string       `json:"shopId"`
	RepairOrderID string       `json:"repairOrderId,omitempty"`
	TemplateID    string       `json:"templateId"`
	Results       []ReportItem `json:"results"`
	Status        string       `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
}

func validReportStatus(s string) bool {
	return s == ReportStatusDraft || s == ReportStatusSent
}

func validItemStatus(s string) bool {
	switch s {
	case ItemPass, ItemFail, ItemAttention:
		return true
	}
	return false
}
