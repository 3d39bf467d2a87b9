package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Pagajob/easyold-sub001/internal/domain"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrStatusConflict is returned by guarded reservation transitions when the
// row's status no longer matches the expected set.
var ErrStatusConflict = errors.New("reservation status conflict")

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int32) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error)

	// Transition persists the reservation's owned fields and moves it to
	// reservation.Status in a single statement, guarded by the expected
	// current statuses. Returns ErrStatusConflict when the row was not in
	// one of them, leaving it untouched.
	Transition(ctx context.Context, reservation *domain.Reservation, from []domain.ReservationStatus) error

	// Contract generation bookkeeping; never touches the lifecycle status.
	SetGenerationState(ctx context.Context, id int32, state domain.GenerationState, reason string) error
	SetContractDocument(ctx context.Context, id int32, url string) error

	MarkOverdue(ctx context.Context, asOf time.Time) ([]domain.Reservation, error)
	ListOverdue(ctx context.Context) ([]domain.Reservation, error)
}

type FeePolicyRepository interface {
	Get(ctx context.Context) (*domain.FeePolicy, error)
	Save(ctx context.Context, policy *domain.FeePolicy) error
}

type CompanyRepository interface {
	Get(ctx context.Context) (*domain.Company, error)
	Save(ctx context.Context, company *domain.Company) error
}
