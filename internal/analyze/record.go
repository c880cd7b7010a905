package analyze

import "time"

const dateLayout = "2006-01-02"

// Record holds the fields recovered from a repair-order document. A field is
// only populated once a candidate has passed its validity predicate; optional
// fields stay zero-valued and are left for manual entry. The cost fields and
// the service date are pinned by the fallback policy, so callers always
// receive a well-formed record.
type Record struct {
	CustomerName  string  `json:"customer_name,omitempty"`
	CustomerPhone string  `json:"customer_phone,omitempty"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	VIN           string  `json:"vin,omitempty"`
	VehicleYear   int     `json:"vehicle_year,omitempty"`
	VehicleMake   string  `json:"vehicle_make,omitempty"`
	VehicleModel  string  `json:"vehicle_model,omitempty"`
	ServiceDate   string  `json:"service_date,omitempty"`
	TotalAmount   float64 `json:"total_amount"`
	PartsCost     float64 `json:"parts_cost"`
	LaborCost     float64 `json:"labor_cost"`
	ServiceWriter string  `json:"service_writer,omitempty"`
	LicensePlate  string  `json:"license_plate,omitempty"`
}

// FallbackRecord is the default returned when a document cannot be read:
// today's date, zeroed costs, everything else blank for manual entry.
func FallbackRecord(now time.Time) Record {
	return Record{ServiceDate: now.UTC().Format(dateLayout)}
}
