package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pagajob/easyold-sub001/internal/contract"
	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/repository"
)

type contractFixture struct {
	reservationRepo *MockReservationRepo
	clientRepo      *MockClientRepo
	vehicleRepo     *MockVehicleRepo
	companyRepo     *MockCompanyRepo
	feePolicyRepo   *MockFeePolicyRepo
	backend         *MockStorageBackend
	emailSvc        *MockEmailService
	svc             ContractService
}

func newContractFixture(t *testing.T) *contractFixture {
	renderer, err := contract.NewRenderer()
	require.NoError(t, err)

	f := &contractFixture{
		reservationRepo: new(MockReservationRepo),
		clientRepo:      new(MockClientRepo),
		vehicleRepo:     new(MockVehicleRepo),
		companyRepo:     new(MockCompanyRepo),
		feePolicyRepo:   new(MockFeePolicyRepo),
		backend:         new(MockStorageBackend),
		emailSvc:        new(MockEmailService),
	}
	f.svc = NewContractService(
		f.reservationRepo,
		f.clientRepo,
		f.vehicleRepo,
		f.companyRepo,
		f.feePolicyRepo,
		renderer,
		f.backend,
		f.emailSvc,
	)
	return f
}

func (f *contractFixture) expectHappyLookups(ctx context.Context, reservation *domain.Reservation) {
	f.reservationRepo.On("GetByID", mock.Anything, reservation.ID).Return(reservation, nil)
	f.clientRepo.On("GetByID", mock.Anything, reservation.ClientID).
		Return(&domain.Client{ID: reservation.ClientID, FirstName: "Jean", LastName: "Martin", Email: "jean@example.com"}, nil)
	f.vehicleRepo.On("GetByID", mock.Anything, reservation.VehicleID).
		Return(&domain.Vehicle{ID: reservation.VehicleID, Brand: "Renault", Model: "Clio", PlateNumber: "AA-123-BB"}, nil)
	f.companyRepo.On("Get", mock.Anything).Return(nil, repository.ErrNotFound)
	f.feePolicyRepo.On("Get", mock.Anything).Return(domain.DefaultFeePolicy(), nil)
}

func TestContractGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("success uploads, persists and delivers", func(t *testing.T) {
		f := newContractFixture(t)
		reservation := newReservationFixture(domain.ReservationStatusInProgress)
		f.expectHappyLookups(ctx, reservation)

		f.reservationRepo.On("SetGenerationState", mock.Anything, int32(1), domain.GenerationStateProcessing, "").Return(nil)
		f.backend.On("Upload", mock.Anything, mock.AnythingOfType("string"), "text/html", mock.Anything).
			Return("https://cdn.example.com/contract.html", nil)
		f.reservationRepo.On("SetContractDocument", mock.Anything, int32(1), "https://cdn.example.com/contract.html").Return(nil)
		f.emailSvc.On("SendContractDocument", mock.Anything, "jean@example.com", "Jean Martin", int32(1), "https://cdn.example.com/contract.html").Return(nil)

		url, err := f.svc.Generate(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/contract.html", url)

		f.reservationRepo.AssertCalled(t, "SetContractDocument", mock.Anything, int32(1), "https://cdn.example.com/contract.html")
		f.emailSvc.AssertNumberOfCalls(t, "SendContractDocument", 1)
	})

	t.Run("missing client email fails before processing", func(t *testing.T) {
		f := newContractFixture(t)
		reservation := newReservationFixture(domain.ReservationStatusInProgress)
		f.reservationRepo.On("GetByID", mock.Anything, int32(1)).Return(reservation, nil)
		f.clientRepo.On("GetByID", mock.Anything, int32(3)).
			Return(&domain.Client{ID: 3, FirstName: "Jean", LastName: "Martin"}, nil)

		_, err := f.svc.Generate(ctx, 1)
		assert.ErrorIs(t, err, ErrMissingClientEmail)

		f.reservationRepo.AssertNotCalled(t, "SetGenerationState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.backend.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delivery failure does not fail the generation", func(t *testing.T) {
		f := newContractFixture(t)
		reservation := newReservationFixture(domain.ReservationStatusInProgress)
		f.expectHappyLookups(ctx, reservation)

		f.reservationRepo.On("SetGenerationState", mock.Anything, int32(1), domain.GenerationStateProcessing, "").Return(nil)
		f.backend.On("Upload", mock.Anything, mock.AnythingOfType("string"), "text/html", mock.Anything).
			Return("https://cdn.example.com/contract.html", nil)
		f.reservationRepo.On("SetContractDocument", mock.Anything, int32(1), "https://cdn.example.com/contract.html").Return(nil)
		f.emailSvc.On("SendContractDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp down"))

		url, err := f.svc.Generate(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/contract.html", url)

		// The document stays recorded; only delivery failed.
		f.reservationRepo.AssertNotCalled(t, "SetGenerationState", mock.Anything, int32(1), domain.GenerationStateFailed, mock.Anything)
	})

	t.Run("upload failure marks the generation failed", func(t *testing.T) {
		f := newContractFixture(t)
		reservation := newReservationFixture(domain.ReservationStatusInProgress)
		f.expectHappyLookups(ctx, reservation)

		f.reservationRepo.On("SetGenerationState", mock.Anything, int32(1), domain.GenerationStateProcessing, "").Return(nil)
		f.backend.On("Upload", mock.Anything, mock.AnythingOfType("string"), "text/html", mock.Anything).
			Return("", errors.New("bucket unavailable"))
		f.reservationRepo.On("SetGenerationState", mock.Anything, int32(1), domain.GenerationStateFailed, mock.AnythingOfType("string")).Return(nil)

		_, err := f.svc.Generate(ctx, 1)
		require.Error(t, err)

		f.reservationRepo.AssertCalled(t, "SetGenerationState", mock.Anything, int32(1), domain.GenerationStateFailed, mock.AnythingOfType("string"))
		f.reservationRepo.AssertNotCalled(t, "SetContractDocument", mock.Anything, mock.Anything, mock.Anything)
		f.emailSvc.AssertNotCalled(t, "SendContractDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already generated returns the stored document", func(t *testing.T) {
		f := newContractFixture(t)
		reservation := newReservationFixture(domain.ReservationStatusInProgress)
		reservation.GenerationState = domain.GenerationStateGenerated
		reservation.ContractDocumentURL = "https://cdn.example.com/existing.html"
		f.reservationRepo.On("GetByID", mock.Anything, int32(1)).Return(reservation, nil)

		url, err := f.svc.Generate(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/existing.html", url)

		f.backend.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cancelled reservation is rejected", func(t *testing.T) {
		f := newContractFixture(t)
		f.reservationRepo.On("GetByID", mock.Anything, int32(1)).
			Return(newReservationFixture(domain.ReservationStatusCancelled), nil)

		_, err := f.svc.Generate(ctx, 1)
		assert.ErrorIs(t, err, ErrReservationTerminal)
	})

	t.Run("concurrent calls share one generation", func(t *testing.T) {
		f := newContractFixture(t)
		reservation := newReservationFixture(domain.ReservationStatusInProgress)
		f.expectHappyLookups(ctx, reservation)

		f.reservationRepo.On("SetGenerationState", mock.Anything, int32(1), domain.GenerationStateProcessing, "").Return(nil)
		f.backend.On("Upload", mock.Anything, mock.AnythingOfType("string"), "text/html", mock.Anything).
			Run(func(args mock.Arguments) { time.Sleep(50 * time.Millisecond) }).
			Return("https://cdn.example.com/contract.html", nil)
		f.reservationRepo.On("SetContractDocument", mock.Anything, int32(1), "https://cdn.example.com/contract.html").Return(nil)
		f.emailSvc.On("SendContractDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		const callers = 5
		urls := make([]string, callers)
		errs := make([]error, callers)

		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				urls[i], errs[i] = f.svc.Generate(ctx, 1)
			}(i)
		}
		wg.Wait()

		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, "https://cdn.example.com/contract.html", urls[i])
		}
		f.backend.AssertNumberOfCalls(t, "Upload", 1)
		f.reservationRepo.AssertNumberOfCalls(t, "SetContractDocument", 1)
	})
}

func TestContractStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("reports the persisted generation fields", func(t *testing.T) {
		f := newContractFixture(t)
		reservation := newReservationFixture(domain.ReservationStatusInProgress)
		reservation.GenerationState = domain.GenerationStateFailed
		reservation.GenerationError = "bucket unavailable"
		f.reservationRepo.On("GetByID", mock.Anything, int32(1)).Return(reservation, nil)

		status, err := f.svc.Status(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.GenerationStateFailed, status.State)
		assert.Equal(t, "bucket unavailable", status.Reason)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newContractFixture(t)
		f.reservationRepo.On("GetByID", mock.Anything, int32(404)).Return(nil, repository.ErrNotFound)

		_, err := f.svc.Status(ctx, 404)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
