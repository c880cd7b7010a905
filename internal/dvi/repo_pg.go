package dvi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) CreateTemplate(ctx context.Context, tpl Template) error {
	items, err := json.Marshal(tpl.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	const query = `
INSERT INTO dvi_templates (id, shop_id, name, items, created_at)
VALUES ($1, $2, $3, $4, now())`
	_, err = r.DB.ExecContext(ctx, query, tpl.ID, tpl.ShopID, tpl.Name, items)
	return err
}

func (r *PGRepo) GetTemplate(ctx context.Context, tplID string) (Template, error) {
	const query = `
SELECT id, shop_id, name, items, created_at
FROM dvi_templates
WHERE id = $1
LIMIT 1`
	return scanTemplate(r.DB.QueryRowContext(ctx, query, tplID))
}

func (r *PGRepo) ListTemplates(ctx context.Context, shopID string) ([]Template, error) {
	const query = `
SELECT id, shop_id, name, items, created_at
FROM dvi_templates
WHERE shop_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Template
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tpl)
	}
	return out, rows.Err()
}

func (r *PGRepo) CreateReport(ctx context.Context, rep Report) error {
	results, err := json.Marshal(rep.Results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	const query = `
INSERT INTO dvi_reports (id, shop_id, repair_order_id, template_id, results, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err = r.DB.ExecContext(ctx, query,
		rep.ID,
		rep.ShopID,
		nullableString(rep.RepairOrderID),
		rep.TemplateID,
		results,
		rep.Status,
	)
	return err
}

func (r *PGRepo) GetReport(ctx context.Context, repID string) (Report, error) {
	const query = `
SELECT id, shop_id, repair_order_id, template_id, results, status, created_at
FROM dvi_reports
WHERE id = $1
LIMIT 1`
	return scanReport(r.DB.QueryRowContext(ctx, query, repID))
}

func (r *PGRepo) ListReports(ctx context.Context, shopID string) ([]Report, error) {
	const query = `
SELECT id, shop_id, repair_order_id, template_id, results, status, created_at
FROM dvi_reports
WHERE shop_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateReport(ctx context.Context, rep Report) error {
	results, err := json.Marshal(rep.Results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	const query = `
UPDATE dvi_reports SET results = $2, status = $3
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, rep.ID, results, rep.Status)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (Template, error) {
	var tpl Template
	var items []byte
	err := row.Scan(&tpl.ID, &tpl.ShopID, &tpl.Name, &items, &tpl.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Template{}, ErrNotFound
		}
		return Template{}, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &tpl.Items); err != nil {
			return Template{}, fmt.Errorf("unmarshal items: %w", err)
		}
	}
	return tpl, nil
}

func scanReport(row rowScanner) (Report, error) {
	var rep Report
	var roID sql.NullString
	var results []byte
	err := row.Scan(&rep.ID, &rep.ShopID, &roID, &rep.TemplateID, &results, &rep.Status, &rep.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Report{}, ErrNotFound
		}
		return Report{}, err
	}
	rep.RepairOrderID = roID.String
	if len(results) > 0 {
		if err := json.Unmarshal(results, &rep.Results); err != nil {
			return Report{}, fmt.Errorf("unmarshal results: %w", err)
		}
	}
	return rep, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
