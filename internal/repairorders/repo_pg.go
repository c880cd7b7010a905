package repairorders

import (
	"context"
	"database/sql"
	"errors"
)

const roColumns = `id, shop_id, customer_id, document_id, customer_name, customer_phone, customer_email,
vin, vehicle_year, vehicle_make, vehicle_model, service_date,
total_amount, parts_cost, labor_cost, service_writer, license_plate, status, created_at, updated_at`

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, ro RepairOrder) error {
	const query = `
INSERT INTO repair_orders (id, shop_id, customer_id, document_id, customer_name, customer_phone, customer_email,
  vin, vehicle_year, vehicle_make, vehicle_model, service_date,
  total_amount, parts_cost, labor_cost, service_writer, license_plate, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		ro.ID,
		ro.ShopID,
		nullableString(ro.CustomerID),
		nullableString(ro.DocumentID),
		nullableString(ro.CustomerName),
		nullableString(ro.CustomerPhone),
		nullableString(ro.CustomerEmail),
		nullableString(ro.VIN),
		nullableInt(ro.VehicleYear),
		nullableString(ro.VehicleMake),
		nullableString(ro.VehicleModel),
		nullableString(ro.ServiceDate),
		ro.TotalAmount,
		ro.PartsCost,
		ro.LaborCost,
		nullableString(ro.ServiceWriter),
		nullableString(ro.LicensePlate),
		ro.Status,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, roID string) (RepairOrder, error) {
	query := `SELECT ` + roColumns + ` FROM repair_orders WHERE id = $1 LIMIT 1`
	return scanRepairOrder(r.DB.QueryRowContext(ctx, query, roID))
}

func (r *PGRepo) ListByShop(ctx context.Context, shopID string, limit, offset int) ([]RepairOrder, error) {
	query := `SELECT ` + roColumns + ` FROM repair_orders WHERE shop_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, shopID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RepairOrder
	for rows.Next() {
		ro, err := scanRepairOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ro)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, roID, status string) (RepairOrder, error) {
	query := `UPDATE repair_orders SET status = $2, updated_at = now() WHERE id = $1 RETURNING ` + roColumns
	return scanRepairOrder(r.DB.QueryRowContext(ctx, query, roID, status))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRepairOrder(row rowScanner) (RepairOrder, error) {
	var ro RepairOrder
	var customerID, documentID, customerName, customerPhone, customerEmail sql.NullString
	var vin, vehicleMake, vehicleModel, serviceDate, serviceWriter, licensePlate sql.NullString
	var vehicleYear sql.NullInt64
	err := row.Scan(
		&ro.ID,
		&ro.ShopID,
		&customerID,
		&documentID,
		&customerName,
		&customerPhone,
		&customerEmail,
		&vin,
		&vehicleYear,
		&vehicleMake,
		&vehicleModel,
		&serviceDate,
		&ro.TotalAmount,
		&ro.PartsCost,
		&ro.LaborCost,
		&serviceWriter,
		&licensePlate,
		&ro.Status,
		&ro.CreatedAt,
		&ro.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RepairOrder{}, ErrNotFound
		}
		return RepairOrder{}, err
	}
	ro.CustomerID = customerID.String
	ro.DocumentID = documentID.String
	ro.CustomerName = customerName.String
	ro.CustomerPhone = customerPhone.String
	ro.CustomerEmail = customerEmail.String
	ro.VIN = vin.String
	ro.VehicleYear = int(vehicleYear.Int64)
	ro.VehicleMake = vehicleMake.String
	ro.VehicleModel = vehicleModel.String
	ro.ServiceDate = serviceDate.String
	ro.ServiceWriter = serviceWriter.String
	ro.LicensePlate = licensePlate.String
	return ro, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value int) any {
	if value == 0 {
		return nil
	}
	return value
}
