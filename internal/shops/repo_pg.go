package shops

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, shop Shop) error {
	const query = `
INSERT INTO shops (id, name, phone, email, address, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		shop.ID,
		shop.Name,
		nullableString(shop.Phone),
		nullableString(shop.Email),
		nullableString(shop.Address),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, shopID string) (Shop, error) {
	const query = `
SELECT id, name, phone, email, address, created_at, updated_at
FROM shops
WHERE id = $1
LIMIT 1`
	return scanShop(r.DB.QueryRowContext(ctx, query, shopID))
}

func (r *PGRepo) List(ctx context.Context) ([]Shop, error) {
	const query = `
SELECT id, name, phone, email, address, created_at, updated_at
FROM shops
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Shop
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, shop)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, shopID string, upd ShopUpdate) (Shop, error) {
	const query = `
UPDATE shops SET
  name = COALESCE($2, name),
  phone = COALESCE($3, phone),
  email = COALESCE($4, email),
  address = COALESCE($5, address),
  updated_at = now()
WHERE id = $1
RETURNING id, name, phone, email, address, created_at, updated_at`
	return scanShop(r.DB.QueryRowContext(ctx, query, shopID, upd.Name, upd.Phone, upd.Email, upd.Address))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShop(row rowScanner) (Shop, error) {
	var shop Shop
	var phone, email, address sql.NullString
	err := row.Scan(&shop.ID, &shop.Name, &phone, &email, &address, &shop.CreatedAt, &shop.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Shop{}, ErrNotFound
		}
		return Shop{}, err
	}
	shop.Phone = phone.String
	shop.Email = email.String
	shop.Address = address.String
	return shop, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
