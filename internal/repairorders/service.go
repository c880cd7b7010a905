package repairorders

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"autoshop-backend/internal/shared/telemetry"
)

// RewardsGateway is the slice of the rewards module the repair-order flow
// needs: crediting points when an order completes.
type RewardsGateway interface {
	Earn(ctx context.Context, shopID, customerID string, points int64, reason, repairOrderID string) error
}

type Service struct {
	Repo    Repo
	Rewards RewardsGateway
}

func NewService(repo Repo, rewards RewardsGateway) *Service {
	return &Service{Repo: repo, Rewards: rewards}
}

func (s *Service) Create(ctx context.Context, ro RepairOrder) (RepairOrder, error) {
	if s == nil || s.Repo == nil {
		return RepairOrder{}, errors.New("repair orders service not configured")
	}
	if strings.TrimSpace(ro.ShopID) == "" {
		return RepairOrder{}, errors.New("shop id is required")
	}
	if ro.ID == "" {
		ro.ID = uuid.NewString()
	}
	if ro.Status == "" {
		ro.Status = StatusOpen
	}
	if !ValidStatus(ro.Status) {
		return RepairOrder{}, fmt.Errorf("invalid status %q", ro.Status)
	}
	if err := s.Repo.Create(ctx, ro); err != nil {
		return RepairOrder{}, err
	}
	return s.Repo.GetByID(ctx, ro.ID)
}

func (s *Service) GetByID(ctx context.Context, roID string) (RepairOrder, error) {
	if s == nil || s.Repo == nil {
		return RepairOrder{}, errors.New("repair orders service not configured")
	}
	return s.Repo.GetByID(ctx, roID)
}

func (s *Service) List(ctx context.Context, shopID string, limit, offset int) ([]RepairOrder, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("repair orders service not configured")
	}
	if shopID == "" {
		return nil, errors.New("shop id is required")
	}
	return s.Repo.ListByShop(ctx, shopID, limit, offset)
}

// UpdateStatus transitions the order. Completing an order with an attached
// customer credits one reward point per whole dollar of the total; a failed
// credit is logged but never blocks the transition.
func (s *Service) UpdateStatus(ctx context.Context, roID, status string) (RepairOrder, error) {
	if s == nil || s.Repo == nil {
		return RepairOrder{}, errors.New("repair orders service not configured")
	}
	if !ValidStatus(status) {
		return RepairOrder{}, fmt.Errorf("invalid status %q", status)
	}

	prev, err := s.Repo.GetByID(ctx, roID)
	if err != nil {
		return RepairOrder{}, err
	}

	ro, err := s.Repo.UpdateStatus(ctx, roID, status)
	if err != nil {
		return RepairOrder{}, err
	}

	if status == StatusCompleted && prev.Status != StatusCompleted {
		s.creditPoints(ctx, ro)
	}
	return ro, nil
}

func (s *Service) creditPoints(ctx context.Context, ro RepairOrder) {
	if s.Rewards == nil || ro.CustomerID == "" {
		return
	}
	points := int64(math.Floor(ro.TotalAmount))
	if points <= 0 {
		return
	}
	err := s.Rewards.Earn(ctx, ro.ShopID, ro.CustomerID, points, "repair order completed", ro.ID)
	if err != nil {
		telemetry.Error("repairorders.credit_points", map[string]any{
			"repair_order_id": ro.ID,
			"customer_id":     ro.CustomerID,
			"points":          points,
			"error":           err.Error(),
		})
	}
}
