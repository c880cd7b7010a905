package documents

import "time"

// Document represents an uploaded repair-order document owned by a shop.
type Document struct {
	ID         string
	ShopID     string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	CreatedAt  time.Time
}
