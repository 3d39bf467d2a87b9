package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/repository"
)

type feePolicyRepository struct {
	db *sql.DB
}

func NewFeePolicyRepository(db *sql.DB) repository.FeePolicyRepository {
	return &feePolicyRepository{db: db}
}

// Get returns the operator's fee schedule, or the default schedule when
// nothing has been saved yet.
func (r *feePolicyRepository) Get(ctx context.Context) (*domain.FeePolicy, error) {
	var (
		policy     domain.FeePolicy
		predefined []byte
		custom     []byte
	)
	query := `SELECT id, predefined_fees, custom_fees, updated_on FROM fee_policies ORDER BY id LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&policy.ID, &predefined, &custom, &policy.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultFeePolicy(), nil
		}
		return nil, err
	}

	if len(predefined) > 0 {
		if err := json.Unmarshal(predefined, &policy.PredefinedFees); err != nil {
			return nil, fmt.Errorf("decode predefined fees: %w", err)
		}
	}
	if len(custom) > 0 {
		if err := json.Unmarshal(custom, &policy.CustomFees); err != nil {
			return nil, fmt.Errorf("decode custom fees: %w", err)
		}
	}
	return &policy, nil
}

func (r *feePolicyRepository) Save(ctx context.Context, policy *domain.FeePolicy) error {
	predefined, err := json.Marshal(policy.PredefinedFees)
	if err != nil {
		return fmt.Errorf("encode predefined fees: %w", err)
	}
	custom, err := json.Marshal(policy.CustomFees)
	if err != nil {
		return fmt.Errorf("encode custom fees: %w", err)
	}

	if policy.ID == 0 {
		query := `INSERT INTO fee_policies (predefined_fees, custom_fees, updated_on) VALUES ($1, $2, $3) RETURNING id`
		return r.db.QueryRowContext(ctx, query, predefined, custom, time.Now()).Scan(&policy.ID)
	}

	query := `UPDATE fee_policies SET predefined_fees=$1, custom_fees=$2, updated_on=$3 WHERE id=$4`
	_, err = r.db.ExecContext(ctx, query, predefined, custom, time.Now(), policy.ID)
	return err
}
