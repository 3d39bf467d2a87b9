package service

import (
	"context"
	"fmt"

	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := validateVehicle(vehicle); err != nil {
		return err
	}
	return s.vehicleRepo.Create(ctx, vehicle)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "vehicle")
	}
	return vehicle, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := validateVehicle(vehicle); err != nil {
		return err
	}
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return mapRepoError(err, "vehicle")
	}
	return nil
}

func (s *vehicleService) ListVehicles(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	return s.vehicleRepo.List(ctx, page, pageSize)
}

func validateVehicle(vehicle *domain.Vehicle) error {
	if vehicle.Brand == "" || vehicle.Model == "" {
		return fmt.Errorf("%w: brand and model are required", ErrInvalidInput)
	}
	if vehicle.DailyKmAllowance < 0 {
		return fmt.Errorf("%w: daily kilometer allowance cannot be negative", ErrInvalidInput)
	}
	if vehicle.PricePerExtraKm < 0 {
		return fmt.Errorf("%w: price per extra kilometer cannot be negative", ErrInvalidInput)
	}
	return nil
}
