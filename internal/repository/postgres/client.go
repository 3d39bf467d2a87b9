package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/repository"
)

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, first_name, last_name, email, phone, address, birth_date, licence_number, licence_date, created_on, updated_on`

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (first_name, last_name, email, phone, address, birth_date, licence_number, licence_date, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.BirthDate, c.LicenceNumber, c.LicenceDate, time.Now(), time.Now(),
	).Scan(&c.ID)
}

func (r *clientRepository) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address,
		&c.BirthDate, &c.LicenceNumber, &c.LicenceDate, &c.CreatedOn, &c.UpdatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET first_name=$1, last_name=$2, email=$3, phone=$4, address=$5,
	          birth_date=$6, licence_number=$7, licence_date=$8, updated_on=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query,
		c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
		c.BirthDate, c.LicenceNumber, c.LicenceDate, time.Now(), c.ID,
	)
	return err
}

func (r *clientRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM clients`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY last_name, first_name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address,
			&c.BirthDate, &c.LicenceNumber, &c.LicenceDate, &c.CreatedOn, &c.UpdatedOn,
		); err != nil {
			return nil, 0, err
		}
		clients = append(clients, c)
	}
	return clients, count, rows.Err()
}
