package insights

import (
	"context"
	"time"
)

type Store interface {
	Summary(ctx context.Context, shopID string, from, to time.Time) (Summary, error)
}
