package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/edl"
	"github.com/Pagajob/easyold-sub001/internal/logger"
	"github.com/Pagajob/easyold-sub001/internal/repository"
	"github.com/Pagajob/easyold-sub001/internal/utils"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	vehicleRepo     repository.VehicleRepository
	clientRepo      repository.ClientRepository
	contracts       ContractService
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	vehicleRepo repository.VehicleRepository,
	clientRepo repository.ClientRepository,
	contracts ContractService,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		clientRepo:      clientRepo,
		contracts:       contracts,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error) {
	if input.ExpectedEndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: expected return date is before start date", ErrInvalidInput)
	}
	if input.ContractType == "" {
		input.ContractType = domain.ContractTypeRental
	}

	if _, err := s.vehicleRepo.GetByID(ctx, input.VehicleID); err != nil {
		return nil, mapRepoError(err, "vehicle")
	}
	if _, err := s.clientRepo.GetByID(ctx, input.ClientID); err != nil {
		return nil, mapRepoError(err, "client")
	}

	reservation := &domain.Reservation{
		VehicleID:       input.VehicleID,
		ClientID:        input.ClientID,
		ContractType:    input.ContractType,
		StartDate:       input.StartDate,
		ExpectedEndDate: input.ExpectedEndDate,
		Status:          domain.ReservationStatusPlanned,
		GenerationState: domain.GenerationStateNotStarted,
		RentalAmount:    input.RentalAmount,
		Notes:           input.Notes,
	}
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) GetReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "reservation")
	}
	return reservation, nil
}

func (s *reservationService) ListReservations(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return s.reservationRepo.List(ctx, status, page, pageSize)
}

func (s *reservationService) ConfirmReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "reservation")
	}
	if reservation.Status.IsTerminal() {
		return nil, ErrReservationTerminal
	}
	if !reservation.Status.CanTransitionTo(domain.ReservationStatusConfirmed) {
		return nil, ErrInvalidStateTransition
	}

	reservation.Status = domain.ReservationStatusConfirmed
	if err := s.transition(ctx, reservation, domain.ReservationStatusPlanned); err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) CancelReservation(ctx context.Context, id int32, reason string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "reservation")
	}
	if reservation.Status.IsTerminal() {
		return nil, ErrReservationTerminal
	}

	reservation.Status = domain.ReservationStatusCancelled
	if reason != "" {
		if reservation.Notes != "" {
			reservation.Notes += "\n"
		}
		reservation.Notes += "Cancelled: " + reason
	}
	err = s.transition(ctx, reservation,
		domain.ReservationStatusPlanned,
		domain.ReservationStatusConfirmed,
		domain.ReservationStatusInProgress,
	)
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation cancelled", "reservation_id", id, "reason", reason)
	return reservation, nil
}

func (s *reservationService) AcceptDepartureReport(ctx context.Context, id int32, report *domain.ConditionReport) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "reservation")
	}
	if reservation.Status.IsTerminal() {
		return nil, ErrReservationTerminal
	}
	if !reservation.Status.CanTransitionTo(domain.ReservationStatusInProgress) {
		return nil, ErrInvalidStateTransition
	}

	if report != nil {
		report.Direction = domain.ReportDirectionDeparture
		if report.CapturedAt.IsZero() {
			report.CapturedAt = time.Now()
		}
	}
	if err := edl.Validate(report, nil); err != nil {
		return nil, err
	}

	reservation.DepartureReport = report
	reservation.SignatureRef = report.SignatureRef
	reservation.Status = domain.ReservationStatusInProgress
	err = s.transition(ctx, reservation,
		domain.ReservationStatusPlanned,
		domain.ReservationStatusConfirmed,
	)
	if err != nil {
		return nil, err
	}

	// The guarded transition succeeds for exactly one caller, so the
	// automatic trigger fires at most once per reservation. The orchestrator
	// owns retries from here on.
	go func() {
		if _, err := s.contracts.Generate(context.Background(), id); err != nil {
			logger.Error("Automatic contract generation failed", "reservation_id", id, "error", err)
		}
	}()

	return reservation, nil
}

func (s *reservationService) AcceptReturnReport(ctx context.Context, id int32, report *domain.ConditionReport, extraFees []domain.SelectedFee) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "reservation")
	}
	if reservation.Status.IsTerminal() {
		return nil, ErrReservationTerminal
	}
	if reservation.Status != domain.ReservationStatusInProgress {
		return nil, ErrInvalidStateTransition
	}

	if report != nil {
		report.Direction = domain.ReportDirectionReturn
		if report.CapturedAt.IsZero() {
			report.CapturedAt = time.Now()
		}
	}
	if err := edl.Validate(report, reservation.DepartureReport); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, reservation.VehicleID)
	if err != nil {
		return nil, mapRepoError(err, "vehicle")
	}

	reservation.ReturnReport = report
	fees, err := utils.ComputeOverage(reservation, vehicle)
	if err != nil {
		reservation.ReturnReport = nil
		return nil, err
	}
	fees.ExtraFeesTotal = utils.SumSelectedFees(extraFees)

	reservation.Fees = &fees
	reservation.Status = domain.ReservationStatusCompleted
	if err := s.transition(ctx, reservation, domain.ReservationStatusInProgress); err != nil {
		return nil, err
	}

	logger.Info("Reservation completed",
		"reservation_id", id,
		"kilometers_driven", fees.KilometersDriven,
		"excess_kilometers", fees.ExcessKilometers,
		"mileage_overage_fee", fees.MileageOverageFee,
		"extra_fees_total", fees.ExtraFeesTotal)

	return reservation, nil
}

func (s *reservationService) transition(ctx context.Context, reservation *domain.Reservation, from ...domain.ReservationStatus) error {
	err := s.reservationRepo.Transition(ctx, reservation, from)
	if errors.Is(err, repository.ErrStatusConflict) {
		// The row moved on under us; treat it like any other illegal jump.
		return ErrInvalidStateTransition
	}
	return err
}

func mapRepoError(err error, entity string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return err
}
