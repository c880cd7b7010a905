package shops

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Create(ctx context.Context, shop Shop) (Shop, error) {
	if s == nil || s.Repo == nil {
		return Shop{}, errors.New("shops service not configured")
	}
	shop.Name = strings.TrimSpace(shop.Name)
	if shop.Name == "" {
		return Shop{}, errors.New("shop name is required")
	}
	if shop.ID == "" {
		shop.ID = uuid.NewString()
	}
	if err := s.Repo.Create(ctx, shop); err != nil {
		return Shop{}, err
	}
	return s.Repo.GetByID(ctx, shop.ID)
}

func (s *Service) GetByID(ctx context.Context, shopID string) (Shop, error) {
	if s == nil || s.Repo == nil {
		return Shop{}, errors.New("shops service not configured")
	}
	if strings.TrimSpace(shopID) == "" {
		return Shop{}, errors.New("shop id is required")
	}
	return s.Repo.GetByID(ctx, shopID)
}

func (s *Service) List(ctx context.Context) ([]Shop, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("shops service not configured")
	}
	return s.Repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, shopID string, upd ShopUpdate) (Shop, error) {
	if s == nil || s.Repo == nil {
		return Shop{}, errors.New("shops service not configured")
	}
	if strings.TrimSpace(shopID) == "" {
		return Shop{}, errors.New("shop id is required")
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return Shop{}, errors.New("shop name cannot be blank")
	}
	return s.Repo.Update(ctx, shopID, upd)
}
