package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, brand, model, plate_number, status, daily_km_allowance, price_per_extra_km,
	deposit_amount, deposit_excess, min_driver_age, min_licence_years,
	financing_type, monthly_payment, purchase_price, created_on, updated_on`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	query := `INSERT INTO vehicles (brand, model, plate_number, status, daily_km_allowance, price_per_extra_km,
	          deposit_amount, deposit_excess, min_driver_age, min_licence_years,
	          financing_type, monthly_payment, purchase_price, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		v.Brand, v.Model, v.PlateNumber, v.Status, v.DailyKmAllowance, v.PricePerExtraKm,
		v.DepositAmount, v.DepositExcess, v.MinDriverAge, v.MinLicenceYears,
		v.FinancingType, v.MonthlyPayment, v.PurchasePrice, time.Now(), time.Now(),
	).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Brand, &v.Model, &v.PlateNumber, &v.Status, &v.DailyKmAllowance, &v.PricePerExtraKm,
		&v.DepositAmount, &v.DepositExcess, &v.MinDriverAge, &v.MinLicenceYears,
		&v.FinancingType, &v.MonthlyPayment, &v.PurchasePrice, &v.CreatedOn, &v.UpdatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET brand=$1, model=$2, plate_number=$3, status=$4, daily_km_allowance=$5,
	          price_per_extra_km=$6, deposit_amount=$7, deposit_excess=$8, min_driver_age=$9,
	          min_licence_years=$10, financing_type=$11, monthly_payment=$12, purchase_price=$13, updated_on=$14
	          WHERE id=$15`
	_, err := r.db.ExecContext(ctx, query,
		v.Brand, v.Model, v.PlateNumber, v.Status, v.DailyKmAllowance,
		v.PricePerExtraKm, v.DepositAmount, v.DepositExcess, v.MinDriverAge,
		v.MinLicenceYears, v.FinancingType, v.MonthlyPayment, v.PurchasePrice, time.Now(),
		v.ID,
	)
	return err
}

func (r *vehicleRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM vehicles`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY brand, model LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(
			&v.ID, &v.Brand, &v.Model, &v.PlateNumber, &v.Status, &v.DailyKmAllowance, &v.PricePerExtraKm,
			&v.DepositAmount, &v.DepositExcess, &v.MinDriverAge, &v.MinLicenceYears,
			&v.FinancingType, &v.MonthlyPayment, &v.PurchasePrice, &v.CreatedOn, &v.UpdatedOn,
		); err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, count, rows.Err()
}
