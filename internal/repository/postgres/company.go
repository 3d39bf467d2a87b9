package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/repository"
)

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Get(ctx context.Context) (*domain.Company, error) {
	c := &domain.Company{}
	query := `SELECT id, name, address, email, phone, siret, logo_url, updated_on FROM companies ORDER BY id LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(
		&c.ID, &c.Name, &c.Address, &c.Email, &c.Phone, &c.SIRET, &c.LogoURL, &c.UpdatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *companyRepository) Save(ctx context.Context, c *domain.Company) error {
	if c.ID == 0 {
		query := `INSERT INTO companies (name, address, email, phone, siret, logo_url, updated_on)
		          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
		return r.db.QueryRowContext(ctx, query, c.Name, c.Address, c.Email, c.Phone, c.SIRET, c.LogoURL, time.Now()).Scan(&c.ID)
	}

	query := `UPDATE companies SET name=$1, address=$2, email=$3, phone=$4, siret=$5, logo_url=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Address, c.Email, c.Phone, c.SIRET, c.LogoURL, time.Now(), c.ID)
	return err
}
