// Package edl validates departure and return condition reports ("états des
// lieux") before they may be recorded on a reservation.
package edl

import (
	"fmt"
	"strings"

	"github.com/Pagajob/easyold-sub001/internal/domain"
)

// FieldError is a single field-level rejection reason.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries every field-level reason a report was rejected.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "invalid condition report: " + strings.Join(parts, "; ")
}

// Validate checks a condition report draft for completeness and consistency.
// For return reports, departure is the reservation's accepted departure
// report, used for the odometer cross-check. Pure: no side effects.
//
// Returns nil when the report is acceptable, or a *ValidationError listing
// every failing field. Callers must not persist a report, nor trigger
// downstream effects, on a non-nil result.
func Validate(report *domain.ConditionReport, departure *domain.ConditionReport) error {
	var fields []FieldError

	if report == nil {
		return &ValidationError{Fields: []FieldError{{Field: "report", Reason: "missing"}}}
	}

	switch report.Direction {
	case domain.ReportDirectionDeparture:
		fields = append(fields, validateDeparture(report)...)
	case domain.ReportDirectionReturn:
		fields = append(fields, validateReturn(report, departure)...)
	default:
		fields = append(fields, FieldError{Field: "direction", Reason: "must be DEPARTURE or RETURN"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateDeparture(report *domain.ConditionReport) []FieldError {
	var fields []FieldError

	if report.Odometer == nil {
		fields = append(fields, FieldError{Field: "odometer", Reason: "reading is required"})
	} else if *report.Odometer < 0 {
		fields = append(fields, FieldError{Field: "odometer", Reason: "reading must not be negative"})
	}

	fields = append(fields, validateFuelLevel(report.FuelLevel)...)

	if report.SignatureRef == "" {
		fields = append(fields, FieldError{Field: "signature_ref", Reason: "client signature is required"})
	}

	fields = append(fields, validateMediaManifest(report)...)

	return fields
}

func validateReturn(report, departure *domain.ConditionReport) []FieldError {
	var fields []FieldError

	if report.Odometer == nil {
		fields = append(fields, FieldError{Field: "odometer", Reason: "reading is required"})
	} else if *report.Odometer < 0 {
		fields = append(fields, FieldError{Field: "odometer", Reason: "reading must not be negative"})
	} else if departure != nil && departure.Odometer != nil && *report.Odometer < *departure.Odometer {
		fields = append(fields, FieldError{
			Field:  "odometer",
			Reason: fmt.Sprintf("return reading %d is below departure reading %d", *report.Odometer, *departure.Odometer),
		})
	}

	fields = append(fields, validateFuelLevel(report.FuelLevel)...)

	return fields
}

func validateFuelLevel(level *int32) []FieldError {
	if level == nil {
		return []FieldError{{Field: "fuel_level", Reason: "level is required"}}
	}
	if *level < domain.FuelLevelMin || *level > domain.FuelLevelMax {
		return []FieldError{{
			Field:  "fuel_level",
			Reason: fmt.Sprintf("level must be between %d and %d", domain.FuelLevelMin, domain.FuelLevelMax),
		}}
	}
	return nil
}

func validateMediaManifest(report *domain.ConditionReport) []FieldError {
	var fields []FieldError

	bySlot := report.MediaBySlot()
	for _, slot := range domain.MandatoryMediaSlots {
		m, ok := bySlot[slot]
		if !ok || (m.Ref == "" && !m.NotApplicable) {
			fields = append(fields, FieldError{
				Field:  "media." + slot,
				Reason: "capture or an explicit not-applicable marker is required",
			})
		}
	}

	return fields
}
