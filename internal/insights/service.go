package insights

import (
	"context"
	"errors"
	"time"
)

type Service struct {
	Store Store
}

func NewService(store Store) *Service {
	return &Service{Store: store}
}

// Summary aggregates completed repair orders for the shop. A zero "to" means
// now; a zero "from" means the beginning of time.
func (s *Service) Summary(ctx context.Context, shopID string, from, to time.Time) (Summary, error) {
	if s == nil || s.Store == nil {
		return Summary{}, errors.New("insights service not configured")
	}
	if shopID == "" {
		return Summary{}, errors.New("shop id is required")
	}
	if to.IsZero() {
		to = time.Now().UTC()
	}
	if !from.IsZero() && !from.Before(to) {
		return Summary{}, errors.New("from must be before to")
	}
	return s.Store.Summary(ctx, shopID, from, to)
}
