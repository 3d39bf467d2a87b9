package domain

import "time"

type ReportDirection string

const (
	ReportDirectionDeparture ReportDirection = "DEPARTURE"
	ReportDirectionReturn    ReportDirection = "RETURN"
)

// Fuel levels are captured on an eighths gauge: 0 = empty, 8 = full.
const (
	FuelLevelMin int32 = 0
	FuelLevelMax int32 = 8
)

// MandatoryMediaSlots is the fixed capture checklist for a condition report.
// Every slot must carry a media reference or an explicit not-applicable marker
// before the report can be accepted.
var MandatoryMediaSlots = []string{
	"front",
	"rear",
	"left_side",
	"right_side",
	"interior",
	"odometer",
}

// MediaSlot is one capture step of the checklist. Ref is either a pending
// local identifier or an uploaded object-storage reference; the engine only
// requires it to be non-empty.
type MediaSlot struct {
	Slot          string `json:"slot"`
	Ref           string `json:"ref,omitempty"`
	Uploaded      bool   `json:"uploaded"`
	NotApplicable bool   `json:"not_applicable,omitempty"`
}

// ConditionReport is a departure or return inspection record ("EDL").
type ConditionReport struct {
	Direction    ReportDirection `json:"direction"`
	CapturedAt   time.Time       `json:"captured_at"`
	Odometer     *int32          `json:"odometer,omitempty"`
	FuelLevel    *int32          `json:"fuel_level,omitempty"`
	Media        []MediaSlot     `json:"media"`
	Notes        string          `json:"notes,omitempty"`
	SignatureRef string          `json:"signature_ref,omitempty"`
}

// MediaBySlot indexes the report's media manifest by slot name.
func (r *ConditionReport) MediaBySlot() map[string]MediaSlot {
	out := make(map[string]MediaSlot, len(r.Media))
	for _, m := range r.Media {
		out[m.Slot] = m
	}
	return out
}
