package service

import (
	"context"
	"time"

	"github.com/Pagajob/easyold-sub001/internal/domain"
)

// CreateReservationInput is the booking payload. Reservations always start
// out Planned.
type CreateReservationInput struct {
	VehicleID       int32
	ClientID        int32
	ContractType    domain.ContractType
	StartDate       time.Time
	ExpectedEndDate time.Time
	RentalAmount    *float64
	Notes           string
}

type ReservationService interface {
	CreateReservation(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error)
	GetReservation(ctx context.Context, id int32) (*domain.Reservation, error)
	ListReservations(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error)

	ConfirmReservation(ctx context.Context, id int32) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, id int32, reason string) (*domain.Reservation, error)

	// AcceptDepartureReport validates and records the departure report,
	// moves the reservation to InProgress and triggers contract generation
	// exactly once.
	AcceptDepartureReport(ctx context.Context, id int32, report *domain.ConditionReport) (*domain.Reservation, error)

	// AcceptReturnReport validates and records the return report, computes
	// the usage fees against the departure report and the vehicle terms,
	// attaches the operator-selected extra fees and completes the
	// reservation.
	AcceptReturnReport(ctx context.Context, id int32, report *domain.ConditionReport, extraFees []domain.SelectedFee) (*domain.Reservation, error)
}

// ContractStatus is the queryable generation state of a reservation's
// contract document.
type ContractStatus struct {
	State       domain.GenerationState `json:"state"`
	Reason      string                 `json:"reason,omitempty"`
	DocumentURL string                 `json:"document_url,omitempty"`
}

type ContractService interface {
	// Generate renders, uploads and records the contract document for the
	// reservation, then best-effort emails it to the client. At most one
	// generation runs per reservation id; a concurrent call joins the
	// in-flight task and returns its outcome.
	Generate(ctx context.Context, reservationID int32) (string, error)

	Status(ctx context.Context, reservationID int32) (*ContractStatus, error)
}

type VehicleService interface {
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	ListVehicles(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

type ClientService interface {
	AddClient(ctx context.Context, client *domain.Client) error
	GetClient(ctx context.Context, id int32) (*domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) error
	ListClients(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error)
}

type SettingsService interface {
	GetFeePolicy(ctx context.Context) (*domain.FeePolicy, error)
	UpdateFeePolicy(ctx context.Context, policy *domain.FeePolicy) error
	GetCompany(ctx context.Context) (*domain.Company, error)
	UpdateCompany(ctx context.Context, company *domain.Company) error
}

type EmailService interface {
	// SendContractDocument delivers the generated contract to the client.
	SendContractDocument(ctx context.Context, email, name string, reservationID int32, documentURL string) error

	// SendReturnReminder nudges a client whose return date has passed.
	SendReturnReminder(ctx context.Context, email, name, vehicleLabel string, expectedEnd time.Time) error
}
