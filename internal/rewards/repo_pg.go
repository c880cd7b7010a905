package rewards

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) CreateCustomer(ctx context.Context, cust Customer) error {
	const query = `
INSERT INTO customers (id, shop_id, name, phone, email, points_balance, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, 0, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		cust.ID,
		cust.ShopID,
		cust.Name,
		nullableString(cust.Phone),
		nullableString(cust.Email),
	)
	return err
}

func (r *PGRepo) GetCustomer(ctx context.Context, customerID string) (Customer, error) {
	const query = `
SELECT id, shop_id, name, phone, email, points_balance, created_at, updated_at
FROM customers
WHERE id = $1
LIMIT 1`
	return scanCustomer(r.DB.QueryRowContext(ctx, query, customerID))
}

func (r *PGRepo) ListCustomers(ctx context.Context, shopID string) ([]Customer, error) {
	const query = `
SELECT id, shop_id, name, phone, email, points_balance, created_at, updated_at
FROM customers
WHERE shop_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Customer
	for rows.Next() {
		cust, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cust)
	}
	return out, rows.Err()
}

// Adjust updates the balance and appends the ledger entry inside one
// transaction. The balance update is conditional so a concurrent redemption
// cannot drive the balance negative.
func (r *PGRepo) Adjust(ctx context.Context, tx Transaction) (Customer, error) {
	dbTx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return Customer{}, err
	}
	defer dbTx.Rollback()

	const update = `
UPDATE customers SET
  points_balance = points_balance + $2,
  updated_at = now()
WHERE id = $1 AND points_balance + $2 >= 0
RETURNING id, shop_id, name, phone, email, points_balance, created_at, updated_at`
	cust, err := scanCustomer(dbTx.QueryRowContext(ctx, update, tx.CustomerID, tx.Points))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// The row exists but the guard blocked it, or the customer is
			// genuinely missing. One cheap lookup tells them apart.
			if _, lookupErr := scanCustomer(dbTx.QueryRowContext(ctx,
				`SELECT id, shop_id, name, phone, email, points_balance, created_at, updated_at FROM customers WHERE id = $1`,
				tx.CustomerID)); lookupErr == nil {
				return Customer{}, ErrInsufficientPoints
			}
			return Customer{}, ErrNotFound
		}
		return Customer{}, err
	}

	const insert = `
INSERT INTO point_transactions (id, customer_id, shop_id, points, reason, repair_order_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := dbTx.ExecContext(ctx, insert,
		tx.ID,
		tx.CustomerID,
		tx.ShopID,
		tx.Points,
		tx.Reason,
		nullableString(tx.RepairOrderID),
		tx.CreatedAt,
	); err != nil {
		return Customer{}, err
	}

	if err := dbTx.Commit(); err != nil {
		return Customer{}, err
	}
	return cust, nil
}

func (r *PGRepo) History(ctx context.Context, customerID string, limit int) ([]Transaction, error) {
	const query = `
SELECT id, customer_id, shop_id, points, reason, repair_order_id, created_at
FROM point_transactions
WHERE customer_id = $1
ORDER BY created_at DESC
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, customerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var tx Transaction
		var roID sql.NullString
		if err := rows.Scan(&tx.ID, &tx.CustomerID, &tx.ShopID, &tx.Points, &tx.Reason, &roID, &tx.CreatedAt); err != nil {
			return nil, err
		}
		tx.RepairOrderID = roID.String
		out = append(out, tx)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (Customer, error) {
	var cust Customer
	var phone, email sql.NullString
	err := row.Scan(&cust.ID, &cust.ShopID, &cust.Name, &phone, &email, &cust.PointsBalance, &cust.CreatedAt, &cust.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, err
	}
	cust.Phone = phone.String
	cust.Email = email.String
	return cust, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
