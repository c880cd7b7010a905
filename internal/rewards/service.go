package rewards

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) CreateCustomer(ctx context.Context, cust Customer) (Customer, error) {
	if s == nil || s.Repo == nil {
		return Customer{}, errors.New("rewards service not configured")
	}
	cust.Name = strings.TrimSpace(cust.Name)
	if cust.ShopID == "" || cust.Name == "" {
		return Customer{}, errors.New("shop id and customer name are required")
	}
	if cust.ID == "" {
		cust.ID = uuid.NewString()
	}
	cust.PointsBalance = 0
	if err := s.Repo.CreateCustomer(ctx, cust); err != nil {
		return Customer{}, err
	}
	return s.Repo.GetCustomer(ctx, cust.ID)
}

func (s *Service) GetCustomer(ctx context.Context, customerID string) (Customer, error) {
	if s == nil || s.Repo == nil {
		return Customer{}, errors.New("rewards service not configured")
	}
	return s.Repo.GetCustomer(ctx, customerID)
}

func (s *Service) ListCustomers(ctx context.Context, shopID string) ([]Customer, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("rewards service not configured")
	}
	if shopID == "" {
		return nil, errors.New("shop id is required")
	}
	return s.Repo.ListCustomers(ctx, shopID)
}

// Earn credits points to a customer. repairOrderID links the ledger entry to
// the repair order that triggered it and may be empty for manual adjustments.
func (s *Service) Earn(ctx context.Context, shopID, customerID string, points int64, reason, repairOrderID string) (Customer, error) {
	if s == nil || s.Repo == nil {
		return Customer{}, errors.New("rewards service not configured")
	}
	if points <= 0 {
		return Customer{}, errors.New("points to earn must be positive")
	}
	return s.Repo.Adjust(ctx, Transaction{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		ShopID:        shopID,
		Points:        points,
		Reason:        reason,
		RepairOrderID: repairOrderID,
		CreatedAt:     time.Now().UTC(),
	})
}

// Redeem debits points. A redemption that exceeds the balance fails with
// ErrInsufficientPoints and changes nothing.
func (s *Service) Redeem(ctx context.Context, shopID, customerID string, points int64, reason string) (Customer, error) {
	if s == nil || s.Repo == nil {
		return Customer{}, errors.New("rewards service not configured")
	}
	if points <= 0 {
		return Customer{}, errors.New("points to redeem must be positive")
	}
	return s.Repo.Adjust(ctx, Transaction{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		ShopID:     shopID,
		Points:     -points,
		Reason:     reason,
		CreatedAt:  time.Now().UTC(),
	})
}

func (s *Service) History(ctx context.Context, customerID string, limit int) ([]Transaction, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("rewards service not configured")
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.Repo.History(ctx, customerID, limit)
}
