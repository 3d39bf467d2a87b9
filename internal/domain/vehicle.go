package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
)

type Vehicle struct {
	ID          int32         `json:"id"`
	Brand       string        `json:"brand"`
	Model       string        `json:"model"`
	PlateNumber string        `json:"plate_number"`
	Status      VehicleStatus `json:"status"`

	// Contract terms. A zero DailyKmAllowance means no kilometers are
	// included; a zero PricePerExtraKm means overage is free.
	DailyKmAllowance int32   `json:"daily_km_allowance"`
	PricePerExtraKm  float64 `json:"price_per_extra_km"`
	DepositAmount    float64 `json:"deposit_amount"`
	DepositExcess    float64 `json:"deposit_excess"`

	MinDriverAge    int32 `json:"min_driver_age"`
	MinLicenceYears int32 `json:"min_licence_years"`

	// Financing metadata, informational only.
	FinancingType  string  `json:"financing_type,omitempty"`
	MonthlyPayment float64 `json:"monthly_payment,omitempty"`
	PurchasePrice  float64 `json:"purchase_price,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
