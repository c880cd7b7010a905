package shops

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "shop not found" }

type Repo interface {
	Create(ctx context.Context, shop Shop) error
	GetByID(ctx context.Context, shopID string) (Shop, error)
	List(ctx context.Context) ([]Shop, error)
	Update(ctx context.Context, shopID string, upd ShopUpdate) (Shop, error)
}
