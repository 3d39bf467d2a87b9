package postgres

import (
	"database/sql"

	"github.com/Pagajob/easyold-sub001/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.ClientRepository
	repository.ReservationRepository
	repository.FeePolicyRepository
	repository.CompanyRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		VehicleRepository:     NewVehicleRepository(db),
		ClientRepository:      NewClientRepository(db),
		ReservationRepository: NewReservationRepository(db),
		FeePolicyRepository:   NewFeePolicyRepository(db),
		CompanyRepository:     NewCompanyRepository(db),
	}
}
