package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/Pagajob/easyold-sub001/internal/logger"
)

// MarkOverdueReturns flags in-progress reservations whose expected return
// date has passed. The flag is informational and never changes the
// reservation's lifecycle status.
func (jr *JobRunner) MarkOverdueReturns() {
	jr.runWithRecovery("MarkOverdueReturns", func() {
		ctx := context.Background()

		overdue, err := jr.store.MarkOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to mark overdue returns", "error", err)
			return
		}

		logger.Info("Marked reservations as overdue", "count", len(overdue))

		for _, reservation := range overdue {
			logger.Debug("Marked reservation as overdue",
				"reservation_id", reservation.ID,
				"vehicle_id", reservation.VehicleID,
				"client_id", reservation.ClientID,
				"expected_end_date", reservation.ExpectedEndDate.Format("2006-01-02"))
		}
	})
}

// SendReturnReminders emails clients whose vehicle return is overdue.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()

		overdue, err := jr.store.ListOverdue(ctx)
		if err != nil {
			logger.Error("Failed to list overdue reservations", "error", err)
			return
		}

		sent := 0
		for _, reservation := range overdue {
			client, err := jr.store.ClientRepository.GetByID(ctx, reservation.ClientID)
			if err != nil {
				logger.Error("Failed to load client for reminder",
					"reservation_id", reservation.ID,
					"client_id", reservation.ClientID,
					"error", err)
				continue
			}
			if client.Email == "" {
				logger.Debug("Skipping reminder, client has no email",
					"reservation_id", reservation.ID,
					"client_id", client.ID)
				continue
			}

			vehicleLabel := fmt.Sprintf("vehicle #%d", reservation.VehicleID)
			if vehicle, err := jr.store.VehicleRepository.GetByID(ctx, reservation.VehicleID); err == nil {
				vehicleLabel = vehicle.Brand + " " + vehicle.Model
			}

			err = jr.services.Email.SendReturnReminder(ctx,
				client.Email, client.FullName(), vehicleLabel, reservation.ExpectedEndDate)
			if err != nil {
				logger.Error("Failed to send return reminder",
					"reservation_id", reservation.ID,
					"email", client.Email,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent return reminders", "count", sent, "overdue", len(overdue))
	})
}
