package documents

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrInvalidInput = errors.New("invalid input")
)

type DocumentsRepo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, docID string) (Document, error)
	ListByShop(ctx context.Context, shopID string, limit, offset int) ([]Document, error)
}
