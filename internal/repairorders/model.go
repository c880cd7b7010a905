package repairorders

import "time"

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCanceled   = "canceled"
)

// ValidStatus reports whether s is one of the known repair-order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// RepairOrder is a shop's work ticket. The vehicle and billing fields usually
// arrive pre-filled from document analysis and stay editable afterwards.
type RepairOrder struct {
	ID            string    `json:"id"`
	ShopID        string    `json:"shopId"`
	CustomerID    string    `json:"customerId,omitempty"`
	DocumentID    string    `json:"documentId,omitempty"`
	CustomerName  string    `json:"customerName,omitempty"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	VIN           string    `json:"vin,omitempty"`
	VehicleYear   int       `json:"vehicleYear,omitempty"`
	VehicleMake   string    `json:"vehicleMake,omitempty"`
	VehicleModel  string    `json:"vehicleModel,omitempty"`
	ServiceDate   string    `json:"serviceDate,omitempty"`
	TotalAmount   float64   `json:"totalAmount"`
	PartsCost     float64   `json:"partsCost"`
	LaborCost     float64   `json:"laborCost"`
	ServiceWriter string    `json:"serviceWriter,omitempty"`
	LicensePlate  string    `json:"licensePlate,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
