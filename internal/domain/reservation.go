package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPlanned    ReservationStatus = "PLANNED"
	ReservationStatusConfirmed  ReservationStatus = "CONFIRMED"
	ReservationStatusInProgress ReservationStatus = "IN_PROGRESS"
	ReservationStatusCompleted  ReservationStatus = "COMPLETED"
	ReservationStatusCancelled  ReservationStatus = "CANCELLED"
)

type ContractType string

const (
	ContractTypeRental   ContractType = "RENTAL"
	ContractTypeFreeLoan ContractType = "FREE_LOAN"
)

type GenerationState string

const (
	GenerationStateNotStarted GenerationState = "NOT_STARTED"
	GenerationStateProcessing GenerationState = "PROCESSING"
	GenerationStateGenerated  GenerationState = "GENERATED"
	GenerationStateFailed     GenerationState = "FAILED"
)

// reservationTransitions lists the legal forward moves for each status.
// Cancellation is handled separately: it is legal from any non-terminal status.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPlanned:    {ReservationStatusConfirmed, ReservationStatusInProgress},
	ReservationStatusConfirmed:  {ReservationStatusInProgress},
	ReservationStatusInProgress: {ReservationStatusCompleted},
}

func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCompleted || s == ReservationStatusCancelled
}

func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	if target == ReservationStatusCancelled {
		return !s.IsTerminal()
	}
	for _, next := range reservationTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// UsageFees holds the figures computed from a departure/return report pair.
// Attached to the reservation when the return report is accepted.
type UsageFees struct {
	KilometersDriven   int32   `json:"kilometers_driven"`
	IncludedKilometers int32   `json:"included_kilometers"`
	ExcessKilometers   int32   `json:"excess_kilometers"`
	MileageOverageFee  float64 `json:"mileage_overage_fee"`
	ExtraFeesTotal     float64 `json:"extra_fees_total"`
}

func (f UsageFees) Total() float64 {
	return f.MileageOverageFee + f.ExtraFeesTotal
}

type Reservation struct {
	ID              int32             `json:"id"`
	VehicleID       int32             `json:"vehicle_id"`
	ClientID        int32             `json:"client_id"`
	ContractType    ContractType      `json:"contract_type"`
	StartDate       time.Time         `json:"start_date"`
	ExpectedEndDate time.Time         `json:"expected_end_date"`
	Status          ReservationStatus `json:"status"`

	DepartureReport *ConditionReport `json:"departure_report,omitempty"`
	ReturnReport    *ConditionReport `json:"return_report,omitempty"`

	ContractDocumentURL string          `json:"contract_document_url,omitempty"`
	GenerationState     GenerationState `json:"contract_generation_state"`
	GenerationError     string          `json:"contract_generation_error,omitempty"`

	RentalAmount *float64   `json:"rental_amount,omitempty"`
	SignatureRef string     `json:"signature_ref,omitempty"`
	Fees         *UsageFees `json:"fees,omitempty"`

	Notes     string    `json:"notes,omitempty"`
	IsOverdue bool      `json:"is_overdue"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
