package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/repository"
)

var reservationRows = []string{
	"id", "vehicle_id", "client_id", "contract_type", "start_date", "expected_end_date", "status",
	"departure_report", "return_report", "contract_document_url", "generation_state", "generation_error",
	"rental_amount", "signature_ref", "fees", "notes", "is_overdue", "created_on", "updated_on",
}

func addReservationRow(rows *sqlmock.Rows, id int32, status domain.ReservationStatus, departure, fees []byte) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, int32(2), int32(3), string(domain.ContractTypeRental), now, now.Add(72*time.Hour), string(status),
		departure, nil, nil, string(domain.GenerationStateNotStarted), nil,
		nil, nil, fees, nil, false, now, now,
	)
}

func TestReservationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rs := &domain.Reservation{
			VehicleID:       2,
			ClientID:        3,
			ContractType:    domain.ContractTypeRental,
			StartDate:       time.Now(),
			ExpectedEndDate: time.Now().Add(72 * time.Hour),
		}

		mock.ExpectQuery("INSERT INTO reservations").
			WithArgs(rs.VehicleID, rs.ClientID, rs.ContractType, rs.StartDate, rs.ExpectedEndDate,
				domain.ReservationStatusPlanned, domain.GenerationStateNotStarted, nil, "",
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, rs)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), rs.ID)
		assert.Equal(t, domain.ReservationStatusPlanned, rs.Status)
	})
}

func TestReservationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success decodes stored reports", func(t *testing.T) {
		odometer := int32(10000)
		departure, _ := json.Marshal(&domain.ConditionReport{
			Direction: domain.ReportDirectionDeparture,
			Odometer:  &odometer,
		})
		fees, _ := json.Marshal(&domain.UsageFees{KilometersDriven: 700, MileageOverageFee: 25})

		mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id").
			WithArgs(int32(1)).
			WillReturnRows(addReservationRow(sqlmock.NewRows(reservationRows), 1, domain.ReservationStatusInProgress, departure, fees))

		rs, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusInProgress, rs.Status)
		require.NotNil(t, rs.DepartureReport)
		assert.Equal(t, int32(10000), *rs.DepartureReport.Odometer)
		require.NotNil(t, rs.Fees)
		assert.Equal(t, 25.0, rs.Fees.MileageOverageFee)
		assert.Nil(t, rs.ReturnReport)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows(reservationRows))

		_, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestReservationRepository_Transition(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	rs := &domain.Reservation{
		ID:     1,
		Status: domain.ReservationStatusConfirmed,
	}
	from := []domain.ReservationStatus{domain.ReservationStatusPlanned}

	t.Run("Success when the row is in an expected status", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations").
			WithArgs(rs.Status, nil, nil, nil, "", nil, "", sqlmock.AnyArg(), rs.ID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Transition(ctx, rs, from))
	})

	t.Run("Conflict when the row moved on", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations").
			WithArgs(rs.Status, nil, nil, nil, "", nil, "", sqlmock.AnyArg(), rs.ID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Transition(ctx, rs, from), repository.ErrStatusConflict)
	})
}

func TestReservationRepository_SetContractDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE reservations SET contract_document_url").
		WithArgs("https://cdn.example.com/contract.html", domain.GenerationStateGenerated, sqlmock.AnyArg(), int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetContractDocument(ctx, 1, "https://cdn.example.com/contract.html"))
}

func TestReservationRepository_MarkOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	asOf := time.Now()
	rows := addReservationRow(sqlmock.NewRows(reservationRows), 1, domain.ReservationStatusInProgress, nil, nil)
	rows = addReservationRow(rows, 2, domain.ReservationStatusInProgress, nil, nil)

	mock.ExpectQuery("UPDATE reservations").
		WithArgs(sqlmock.AnyArg(), domain.ReservationStatusInProgress, asOf).
		WillReturnRows(rows)

	marked, err := repo.MarkOverdue(ctx, asOf)
	require.NoError(t, err)
	assert.Len(t, marked, 2)
}
