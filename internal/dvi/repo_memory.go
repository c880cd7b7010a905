package dvi

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu        sync.RWMutex
	templates map[string]Template
	reports   map[string]Report
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		templates: make(map[string]Template),
		reports:   make(map[string]Report),
	}
}

func (r *MemoryRepo) CreateTemplate(ctx context.Context, tpl Template) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	tpl.CreatedAt = time.Now().UTC()
	r.templates[tpl.ID] = tpl
	return nil
}

func (r *MemoryRepo) GetTemplate(ctx context.Context, tplID string) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tpl, ok := r.templates[tplID]
	if !ok {
		return Template{}, ErrNotFound
	}
	return tpl, nil
}

func (r *MemoryRepo) ListTemplates(ctx context.Context, shopID string) ([]Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Template
	for _, tpl := range r.templates {
		if tpl.ShopID == shopID {
			out = append(out, tpl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) CreateReport(ctx context.Context, rep Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rep.CreatedAt = time.Now().UTC()
	r.reports[rep.ID] = rep
	return nil
}

func (r *MemoryRepo) GetReport(ctx context.Context, repID string) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rep, ok := r.reports[repID]
	if !ok {
		return Report{}, ErrNotFound
	}
	return rep, nil
}

func (r *MemoryRepo) ListReports(ctx context.Context, shopID string) ([]Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Report
	for _, rep := range r.reports {
		if rep.ShopID == shopID {
			out = append(out, rep)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) UpdateReport(ctx context.Context, rep Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.reports[rep.ID]
	if !ok {
		return ErrNotFound
	}
	rep.CreatedAt = existing.CreatedAt
	r.reports[rep.ID] = rep
	return nil
}
