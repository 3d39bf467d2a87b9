package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, vehicle_id, client_id, contract_type, start_date, expected_end_date, status,
	departure_report, return_report, contract_document_url, generation_state, generation_error,
	rental_amount, signature_ref, fees, notes, is_overdue, created_on, updated_on`

func (r *reservationRepository) Create(ctx context.Context, rs *domain.Reservation) error {
	if rs.Status == "" {
		rs.Status = domain.ReservationStatusPlanned
	}
	if rs.GenerationState == "" {
		rs.GenerationState = domain.GenerationStateNotStarted
	}
	query := `INSERT INTO reservations (vehicle_id, client_id, contract_type, start_date, expected_end_date, status, generation_state, rental_amount, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rs.VehicleID, rs.ClientID, rs.ContractType, rs.StartDate, rs.ExpectedEndDate,
		rs.Status, rs.GenerationState, rs.RentalAmount, rs.Notes, time.Now(), time.Now(),
	).Scan(&rs.ID)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	rs, err := scanReservation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rs, nil
}

func (r *reservationRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + reservationColumns + ` FROM reservations`

	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY start_date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		rs, err := scanReservation(rows)
		if err != nil {
			return nil, 0, err
		}
		reservations = append(reservations, *rs)
	}
	return reservations, count, rows.Err()
}

func (r *reservationRepository) Transition(ctx context.Context, rs *domain.Reservation, from []domain.ReservationStatus) error {
	departure, err := marshalReport(rs.DepartureReport)
	if err != nil {
		return err
	}
	ret, err := marshalReport(rs.ReturnReport)
	if err != nil {
		return err
	}
	fees, err := marshalFees(rs.Fees)
	if err != nil {
		return err
	}

	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}

	query := `UPDATE reservations
	          SET status=$1, departure_report=$2, return_report=$3, rental_amount=$4,
	              signature_ref=$5, fees=$6, notes=$7, updated_on=$8
	          WHERE id=$9 AND status = ANY($10)`
	res, err := r.db.ExecContext(ctx, query,
		rs.Status, departure, ret, rs.RentalAmount,
		rs.SignatureRef, fees, rs.Notes, time.Now(),
		rs.ID, pq.Array(statuses),
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrStatusConflict
	}
	return nil
}

func (r *reservationRepository) SetGenerationState(ctx context.Context, id int32, state domain.GenerationState, reason string) error {
	query := `UPDATE reservations SET generation_state=$1, generation_error=$2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, state, reason, time.Now(), id)
	return err
}

func (r *reservationRepository) SetContractDocument(ctx context.Context, id int32, url string) error {
	query := `UPDATE reservations SET contract_document_url=$1, generation_state=$2, generation_error='', updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, url, domain.GenerationStateGenerated, time.Now(), id)
	return err
}

func (r *reservationRepository) MarkOverdue(ctx context.Context, asOf time.Time) ([]domain.Reservation, error) {
	query := `UPDATE reservations
	          SET is_overdue = TRUE, updated_on = $1
	          WHERE status = $2 AND is_overdue = FALSE AND expected_end_date < $3
	          RETURNING ` + reservationColumns
	rows, err := r.db.QueryContext(ctx, query, time.Now(), domain.ReservationStatusInProgress, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marked []domain.Reservation
	for rows.Next() {
		rs, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		marked = append(marked, *rs)
	}
	return marked, rows.Err()
}

func (r *reservationRepository) ListOverdue(ctx context.Context) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE status = $1 AND is_overdue = TRUE`
	rows, err := r.db.QueryContext(ctx, query, domain.ReservationStatusInProgress)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overdue []domain.Reservation
	for rows.Next() {
		rs, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		overdue = append(overdue, *rs)
	}
	return overdue, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		rs              domain.Reservation
		departure, ret  []byte
		fees            []byte
		docURL          sql.NullString
		generationError sql.NullString
		signatureRef    sql.NullString
		notes           sql.NullString
	)
	err := row.Scan(
		&rs.ID, &rs.VehicleID, &rs.ClientID, &rs.ContractType, &rs.StartDate, &rs.ExpectedEndDate, &rs.Status,
		&departure, &ret, &docURL, &rs.GenerationState, &generationError,
		&rs.RentalAmount, &signatureRef, &fees, &notes, &rs.IsOverdue, &rs.CreatedOn, &rs.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}

	rs.ContractDocumentURL = docURL.String
	rs.GenerationError = generationError.String
	rs.SignatureRef = signatureRef.String
	rs.Notes = notes.String

	if len(departure) > 0 {
		rs.DepartureReport = &domain.ConditionReport{}
		if err := json.Unmarshal(departure, rs.DepartureReport); err != nil {
			return nil, fmt.Errorf("decode departure report: %w", err)
		}
	}
	if len(ret) > 0 {
		rs.ReturnReport = &domain.ConditionReport{}
		if err := json.Unmarshal(ret, rs.ReturnReport); err != nil {
			return nil, fmt.Errorf("decode return report: %w", err)
		}
	}
	if len(fees) > 0 {
		rs.Fees = &domain.UsageFees{}
		if err := json.Unmarshal(fees, rs.Fees); err != nil {
			return nil, fmt.Errorf("decode fees: %w", err)
		}
	}
	return &rs, nil
}

func marshalReport(report *domain.ConditionReport) (interface{}, error) {
	if report == nil {
		return nil, nil
	}
	data, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("encode condition report: %w", err)
	}
	return data, nil
}

func marshalFees(fees *domain.UsageFees) (interface{}, error) {
	if fees == nil {
		return nil, nil
	}
	data, err := json.Marshal(fees)
	if err != nil {
		return nil, fmt.Errorf("encode fees: %w", err)
	}
	return data, nil
}
