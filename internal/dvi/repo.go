package dvi

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

type Repo interface {
	CreateTemplate(ctx context.Context, tpl Template) error
	GetTemplate(ctx context.Context, tplID string) (Template, error)
	ListTemplates(ctx context.Context, shopID string) ([]Template, error)

	CreateReport(ctx context.Context, rep Report) error
	GetReport(ctx context.Context, repID string) (Report, error)
	ListReports(ctx context.Context, shopID string) ([]Report, error)
	UpdateReport(ctx context.Context, rep Report) error
}
