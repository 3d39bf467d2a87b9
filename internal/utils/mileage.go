package utils

import (
	"fmt"
	"time"

	"github.com/Pagajob/easyold-sub001/internal/domain"
)

const hoursPerDay = 24

// DurationDays returns the chargeable number of days between start and end,
// rounding any started day up. A same-day rental still counts as one day.
func DurationDays(start, end time.Time) int32 {
	if !end.After(start) {
		return 1
	}
	hours := end.Sub(start).Hours()
	days := int32(hours / hoursPerDay)
	if hours > float64(days)*hoursPerDay {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// ComputeOverage derives the mileage figures for a reservation whose
// departure and return reports have both been accepted.
//
// An unset daily allowance means no kilometers are included; an unset
// per-extra-km rate means overage is free. Neither is an error: incomplete
// vehicle records default to a zero fee component. Kilometers are exact and
// the fee is the exact product; currency rounding belongs to the caller.
func ComputeOverage(reservation *domain.Reservation, vehicle *domain.Vehicle) (domain.UsageFees, error) {
	if reservation.DepartureReport == nil || reservation.DepartureReport.Odometer == nil {
		return domain.UsageFees{}, fmt.Errorf("departure odometer reading is missing")
	}
	if reservation.ReturnReport == nil || reservation.ReturnReport.Odometer == nil {
		return domain.UsageFees{}, fmt.Errorf("return odometer reading is missing")
	}

	start := *reservation.DepartureReport.Odometer
	end := *reservation.ReturnReport.Odometer
	if end < start {
		return domain.UsageFees{}, fmt.Errorf("return odometer %d is below departure odometer %d", end, start)
	}

	days := DurationDays(reservation.StartDate, reservation.ExpectedEndDate)
	driven := end - start
	included := vehicle.DailyKmAllowance * days

	excess := driven - included
	if excess < 0 {
		excess = 0
	}

	return domain.UsageFees{
		KilometersDriven:   driven,
		IncludedKilometers: included,
		ExcessKilometers:   excess,
		MileageOverageFee:  float64(excess) * vehicle.PricePerExtraKm,
	}, nil
}

// SumSelectedFees totals the operator-selected ad-hoc fee line items.
// Selection is manual; the engine only guarantees the aggregation.
func SumSelectedFees(fees []domain.SelectedFee) float64 {
	var total float64
	for _, fee := range fees {
		total += fee.Amount()
	}
	return total
}
