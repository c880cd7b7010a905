package rewards

import "time"

type Customer struct {
	ID            string    `json:"id"`
	ShopID        string    `json:"shopId"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	PointsBalance int64     `json:"pointsBalance"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Transaction is one entry in a customer's point ledger. Points are positive
// for earns and negative for redemptions.
type Transaction struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	ShopID        string    `json:"shopId"`
	Points        int64     `json:"points"`
	Reason        string    `json:"reason"`
	RepairOrderID string    `json:"repairOrderId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
