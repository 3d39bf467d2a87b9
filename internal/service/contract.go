package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Pagajob/easyold-sub001/internal/contract"
	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/logger"
	"github.com/Pagajob/easyold-sub001/internal/repository"
	"github.com/Pagajob/easyold-sub001/internal/storage"
)

// generationTask is the shared outcome of one in-flight generation. Callers
// that lose the registry race block on done and read the winner's result.
type generationTask struct {
	done chan struct{}
	url  string
	err  error
}

type contractService struct {
	reservationRepo repository.ReservationRepository
	clientRepo      repository.ClientRepository
	vehicleRepo     repository.VehicleRepository
	companyRepo     repository.CompanyRepository
	feePolicyRepo   repository.FeePolicyRepository
	renderer        *contract.Renderer
	store           storage.Backend
	emailSvc        EmailService

	mu       sync.Mutex
	inflight map[int32]*generationTask
}

func NewContractService(
	reservationRepo repository.ReservationRepository,
	clientRepo repository.ClientRepository,
	vehicleRepo repository.VehicleRepository,
	companyRepo repository.CompanyRepository,
	feePolicyRepo repository.FeePolicyRepository,
	renderer *contract.Renderer,
	store storage.Backend,
	emailSvc EmailService,
) ContractService {
	return &contractService{
		reservationRepo: reservationRepo,
		clientRepo:      clientRepo,
		vehicleRepo:     vehicleRepo,
		companyRepo:     companyRepo,
		feePolicyRepo:   feePolicyRepo,
		renderer:        renderer,
		store:           store,
		emailSvc:        emailSvc,
		inflight:        make(map[int32]*generationTask),
	}
}

func (s *contractService) Generate(ctx context.Context, reservationID int32) (string, error) {
	s.mu.Lock()
	if task, ok := s.inflight[reservationID]; ok {
		s.mu.Unlock()
		<-task.done
		return task.url, task.err
	}
	task := &generationTask{done: make(chan struct{})}
	s.inflight[reservationID] = task
	s.mu.Unlock()

	task.url, task.err = s.run(ctx, reservationID)
	close(task.done)

	s.mu.Lock()
	delete(s.inflight, reservationID)
	s.mu.Unlock()

	return task.url, task.err
}

func (s *contractService) Status(ctx context.Context, reservationID int32) (*ContractStatus, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, mapRepoError(err, "reservation")
	}
	return &ContractStatus{
		State:       reservation.GenerationState,
		Reason:      reservation.GenerationError,
		DocumentURL: reservation.ContractDocumentURL,
	}, nil
}

// run executes one full generation cycle: render, upload, persist, deliver.
// Preconditions are checked before the reservation enters Processing so that
// actionable errors (missing email) never mark the generation failed.
func (s *contractService) run(ctx context.Context, reservationID int32) (string, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return "", mapRepoError(err, "reservation")
	}
	if reservation.Status == domain.ReservationStatusCancelled {
		return "", ErrReservationTerminal
	}
	if reservation.GenerationState == domain.GenerationStateGenerated && reservation.ContractDocumentURL != "" {
		return reservation.ContractDocumentURL, nil
	}

	client, err := s.clientRepo.GetByID(ctx, reservation.ClientID)
	if err != nil {
		return "", mapRepoError(err, "client")
	}
	if client.Email == "" {
		return "", ErrMissingClientEmail
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, reservation.VehicleID)
	if err != nil {
		return "", mapRepoError(err, "vehicle")
	}

	if err := s.reservationRepo.SetGenerationState(ctx, reservationID, domain.GenerationStateProcessing, ""); err != nil {
		return "", err
	}

	url, err := s.generateDocument(ctx, reservation, client, vehicle)
	if err != nil {
		if stateErr := s.reservationRepo.SetGenerationState(ctx, reservationID, domain.GenerationStateFailed, err.Error()); stateErr != nil {
			logger.Error("Failed to record generation failure", "reservation_id", reservationID, "error", stateErr)
		}
		return "", err
	}

	// Delivery is best-effort: the contract is available regardless.
	if err := s.emailSvc.SendContractDocument(ctx, client.Email, client.FullName(), reservationID, url); err != nil {
		logger.Error("Contract delivery failed", "reservation_id", reservationID, "email", client.Email, "error", err)
	}

	return url, nil
}

func (s *contractService) generateDocument(ctx context.Context, reservation *domain.Reservation, client *domain.Client, vehicle *domain.Vehicle) (string, error) {
	// Company profile and fee policy are optional inputs; the template
	// degrades gracefully without them.
	company, err := s.companyRepo.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("failed to load company profile: %w", err)
	}
	feePolicy, err := s.feePolicyRepo.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load fee policy: %w", err)
	}

	document, err := s.renderer.Render(contract.Inputs{
		Reservation: reservation,
		Client:      client,
		Vehicle:     vehicle,
		Company:     company,
		FeePolicy:   feePolicy,
	})
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("contracts/reservation-%d/%s.html", reservation.ID, uuid.New().String())
	url, err := s.store.Upload(ctx, key, "text/html", bytes.NewReader(document))
	if err != nil {
		return "", fmt.Errorf("failed to upload contract: %w", err)
	}

	// Only a successful upload replaces a previously stored document URL.
	if err := s.reservationRepo.SetContractDocument(ctx, reservation.ID, url); err != nil {
		return "", fmt.Errorf("failed to record contract document: %w", err)
	}

	logger.Info("Contract generated", "reservation_id", reservation.ID, "url", url)
	return url, nil
}
