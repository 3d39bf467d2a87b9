package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatusTransitions(t *testing.T) {
	tests := []struct {
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{ReservationStatusPlanned, ReservationStatusConfirmed, true},
		{ReservationStatusPlanned, ReservationStatusInProgress, true},
		{ReservationStatusPlanned, ReservationStatusCompleted, false},
		{ReservationStatusConfirmed, ReservationStatusInProgress, true},
		{ReservationStatusConfirmed, ReservationStatusCompleted, false},
		{ReservationStatusInProgress, ReservationStatusCompleted, true},
		{ReservationStatusInProgress, ReservationStatusConfirmed, false},
		{ReservationStatusCompleted, ReservationStatusInProgress, false},

		{ReservationStatusPlanned, ReservationStatusCancelled, true},
		{ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{ReservationStatusInProgress, ReservationStatusCancelled, true},
		{ReservationStatusCompleted, ReservationStatusCancelled, false},
		{ReservationStatusCancelled, ReservationStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReservationStatusIsTerminal(t *testing.T) {
	assert.False(t, ReservationStatusPlanned.IsTerminal())
	assert.False(t, ReservationStatusConfirmed.IsTerminal())
	assert.False(t, ReservationStatusInProgress.IsTerminal())
	assert.True(t, ReservationStatusCompleted.IsTerminal())
	assert.True(t, ReservationStatusCancelled.IsTerminal())
}

func TestUsageFeesTotal(t *testing.T) {
	fees := UsageFees{MileageOverageFee: 25, ExtraFeesTotal: 80}
	assert.Equal(t, 105.0, fees.Total())
}
