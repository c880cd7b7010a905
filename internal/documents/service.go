package documents

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"autoshop-backend/internal/shared/storage/object"
)

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  DocumentsRepo
}

// Upload saves the file to object storage and records the document under the
// owning shop.
func (s *Service) Upload(ctx context.Context, shopID, fileName string, r io.Reader) (Document, error) {
	if shopID == "" || fileName == "" {
		return Document{}, fmt.Errorf("%w: shop id and file name are required", ErrInvalidInput)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, shopID, fileName, r)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:         uuid.NewString(),
		ShopID:     shopID,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// GetByID fetches a single document record.
func (s *Service) GetByID(ctx context.Context, docID string) (Document, error) {
	if docID == "" {
		return Document{}, fmt.Errorf("%w: document id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, docID)
}

// List returns the shop's documents, newest first.
func (s *Service) List(ctx context.Context, shopID string, limit, offset int) ([]Document, error) {
	if shopID == "" {
		return nil, fmt.Errorf("%w: shop id is required", ErrInvalidInput)
	}
	return s.Repo.ListByShop(ctx, shopID, limit, offset)
}
