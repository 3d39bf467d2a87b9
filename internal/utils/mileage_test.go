package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Pagajob/easyold-sub001/internal/domain"
)

func TestDurationDays(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int32
	}{
		{"exact three days", base, base.Add(72 * time.Hour), 3},
		{"started day rounds up", base, base.Add(73 * time.Hour), 4},
		{"under one day", base, base.Add(6 * time.Hour), 1},
		{"same instant", base, base, 1},
		{"end before start", base, base.Add(-24 * time.Hour), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationDays(tt.start, tt.end))
		})
	}
}

func int32Ptr(v int32) *int32 { return &v }

func TestComputeOverage(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	reservation := func(departureOdo, returnOdo int32, days time.Duration) *domain.Reservation {
		return &domain.Reservation{
			StartDate:       start,
			ExpectedEndDate: start.Add(days),
			DepartureReport: &domain.ConditionReport{Odometer: int32Ptr(departureOdo)},
			ReturnReport:    &domain.ConditionReport{Odometer: int32Ptr(returnOdo)},
		}
	}

	t.Run("overage billed at the vehicle rate", func(t *testing.T) {
		// 3 days at 200 km/day leaves 600 km included; 700 driven.
		vehicle := &domain.Vehicle{DailyKmAllowance: 200, PricePerExtraKm: 0.25}
		fees, err := ComputeOverage(reservation(10000, 10700, 72*time.Hour), vehicle)

		assert.NoError(t, err)
		assert.Equal(t, int32(700), fees.KilometersDriven)
		assert.Equal(t, int32(600), fees.IncludedKilometers)
		assert.Equal(t, int32(100), fees.ExcessKilometers)
		assert.Equal(t, 25.00, fees.MileageOverageFee)
	})

	t.Run("driving within the allowance is free", func(t *testing.T) {
		vehicle := &domain.Vehicle{DailyKmAllowance: 200, PricePerExtraKm: 0.25}
		fees, err := ComputeOverage(reservation(10000, 10500, 72*time.Hour), vehicle)

		assert.NoError(t, err)
		assert.Equal(t, int32(0), fees.ExcessKilometers)
		assert.Equal(t, 0.0, fees.MileageOverageFee)
	})

	t.Run("unset vehicle terms never charge", func(t *testing.T) {
		fees, err := ComputeOverage(reservation(10000, 10700, 72*time.Hour), &domain.Vehicle{})

		assert.NoError(t, err)
		assert.Equal(t, int32(700), fees.ExcessKilometers)
		assert.Equal(t, 0.0, fees.MileageOverageFee)
	})

	t.Run("same-day rental counts one day of allowance", func(t *testing.T) {
		vehicle := &domain.Vehicle{DailyKmAllowance: 200, PricePerExtraKm: 0.25}
		fees, err := ComputeOverage(reservation(10000, 10150, 4*time.Hour), vehicle)

		assert.NoError(t, err)
		assert.Equal(t, int32(200), fees.IncludedKilometers)
		assert.Equal(t, int32(0), fees.ExcessKilometers)
	})

	t.Run("missing readings are an error", func(t *testing.T) {
		r := reservation(10000, 10700, 72*time.Hour)
		r.ReturnReport = nil

		_, err := ComputeOverage(r, &domain.Vehicle{})
		assert.Error(t, err)
	})

	t.Run("return odometer below departure is an error", func(t *testing.T) {
		_, err := ComputeOverage(reservation(10700, 10000, 72*time.Hour), &domain.Vehicle{})
		assert.Error(t, err)
	})
}

func TestSumSelectedFees(t *testing.T) {
	fees := []domain.SelectedFee{
		{Label: "Fuel shortfall", UnitPrice: 20, Quantity: 2},
		{Label: "Cleaning", UnitPrice: 80, Quantity: 1},
	}
	assert.Equal(t, 120.0, SumSelectedFees(fees))
	assert.Equal(t, 0.0, SumSelectedFees(nil))
}
