package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Pagajob/easyold-sub001/internal/domain"
)

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}
func (m *MockReservationRepo) Transition(ctx context.Context, reservation *domain.Reservation, from []domain.ReservationStatus) error {
	args := m.Called(ctx, reservation, from)
	return args.Error(0)
}
func (m *MockReservationRepo) SetGenerationState(ctx context.Context, id int32, state domain.GenerationState, reason string) error {
	args := m.Called(ctx, id, state, reason)
	return args.Error(0)
}
func (m *MockReservationRepo) SetContractDocument(ctx context.Context, id int32, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}
func (m *MockReservationRepo) MarkOverdue(ctx context.Context, asOf time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListOverdue(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) Update(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Client), args.Get(1).(int32), args.Error(2)
}

// MockFeePolicyRepo
type MockFeePolicyRepo struct {
	mock.Mock
}

func (m *MockFeePolicyRepo) Get(ctx context.Context) (*domain.FeePolicy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeePolicy), args.Error(1)
}
func (m *MockFeePolicyRepo) Save(ctx context.Context, policy *domain.FeePolicy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

// MockCompanyRepo
type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Get(ctx context.Context) (*domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) Save(ctx context.Context, company *domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendContractDocument(ctx context.Context, email, name string, reservationID int32, documentURL string) error {
	args := m.Called(ctx, email, name, reservationID, documentURL)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminder(ctx context.Context, email, name, vehicleLabel string, expectedEnd time.Time) error {
	args := m.Called(ctx, email, name, vehicleLabel, expectedEnd)
	return args.Error(0)
}

// MockStorageBackend
type MockStorageBackend struct {
	mock.Mock
}

func (m *MockStorageBackend) Upload(ctx context.Context, key, contentType string, data io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}
func (m *MockStorageBackend) GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorageBackend) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockContractService
type MockContractService struct {
	mock.Mock

	generated chan int32
}

func (m *MockContractService) Generate(ctx context.Context, reservationID int32) (string, error) {
	args := m.Called(ctx, reservationID)
	if m.generated != nil {
		m.generated <- reservationID
	}
	return args.String(0), args.Error(1)
}
func (m *MockContractService) Status(ctx context.Context, reservationID int32) (*ContractStatus, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ContractStatus), args.Error(1)
}
