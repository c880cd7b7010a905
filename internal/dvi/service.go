package dvi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) CreateTemplate(ctx context.Context, tpl Template) (Template, error) {
	if s == nil || s.Repo == nil {
		return Template{}, errors.New("dvi service not configured")
	}
	tpl.Name = strings.TrimSpace(tpl.Name)
	if tpl.ShopID == "" || tpl.Name == "" {
		return Template{}, errors.New("shop id and template name are required")
	}
	if len(tpl.Items) == 0 {
		return Template{}, errors.New("template needs at least one item")
	}
	for i, item := range tpl.Items {
		if strings.TrimSpace(item.Label) == "" {
			return Template{}, fmt.Errorf("item %d: label is required", i)
		}
	}
	if tpl.ID == "" {
		tpl.ID = uuid.NewString()
	}
	if err := s.Repo.CreateTemplate(ctx, tpl); err != nil {
		return Template{}, err
	}
	return s.Repo.GetTemplate(ctx, tpl.ID)
}

func (s *Service) GetTemplate(ctx context.Context, tplID string) (Template, error) {
	if s == nil || s.Repo == nil {
		return Template{}, errors.New("dvi service not configured")
	}
	return s.Repo.GetTemplate(ctx, tplID)
}

func (s *Service) ListTemplates(ctx context.Context, shopID string) ([]Template, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("dvi service not configured")
	}
	if shopID == "" {
		return nil, errors.New("shop id is required")
	}
	return s.Repo.ListTemplates(ctx, shopID)
}

// CreateReport opens a draft inspection against a template. Results may be
// empty at creation and filled in as the technician works through the list.
func (s *Service) CreateReport(ctx context.Context, rep Report) (Report, error) {
	if s == nil || s.Repo == nil {
		return Report{}, errors.New("dvi service not configured")
	}
	if rep.ShopID == "" || rep.TemplateID == "" {
		return Report{}, errors.New("shop id and template id are required")
	}
	if _, err := s.Repo.GetTemplate(ctx, rep.TemplateID); err != nil {
		return Report{}, err
	}
	if err := validateResults(rep.Results); err != nil {
		return Report{}, err
	}
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	rep.Status = ReportStatusDraft
	if err := s.Repo.CreateReport(ctx, rep); err != nil {
		return Report{}, err
	}
	return s.Repo.GetReport(ctx, rep.ID)
}

func (s *Service) GetReport(ctx context.Context, repID string) (Report, error) {
	if s == nil || s.Repo == nil {
		return Report{}, errors.New("dvi service not configured")
	}
	return s.Repo.GetReport(ctx, repID)
}

func (s *Service) ListReports(ctx context.Context, shopID string) ([]Report, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("dvi service not configured")
	}
	if shopID == "" {
		return nil, errors.New("shop id is required")
	}
	return s.Repo.ListReports(ctx, shopID)
}

// UpdateReport replaces the results and optionally transitions the status.
// A sent report is immutable.
func (s *Service) UpdateReport(ctx context.Context, repID string, results []ReportItem, status string) (Report, error) {
	if s == nil || s.Repo == nil {
		return Report{}, errors.New("dvi service not configured")
	}
	rep, err := s.Repo.GetReport(ctx, repID)
	if err != nil {
		return Report{}, err
	}
	if rep.Status == ReportStatusSent {
		return Report{}, errors.New("report has already been sent")
	}
	if results != nil {
		if err := validateResults(results); err != nil {
			return Report{}, err
		}
		rep.Results = results
	}
	if status != "" {
		if !validReportStatus(status) {
			return Report{}, fmt.Errorf("invalid status %q", status)
		}
		rep.Status = status
	}
	if err := s.Repo.UpdateReport(ctx, rep); err != nil {
		return Report{}, err
	}
	return s.Repo.GetReport(ctx, repID)
}

func validateResults(results []ReportItem) error {
	for i, item := range results {
		if strings.TrimSpace(item.Label) == "" {
			return fmt.Errorf("result %d: label is required", i)
		}
		if !validItemStatus(item.Status) {
			return fmt.Errorf("result %d: status must be pass, fail, or attention", i)
		}
	}
	return nil
}
