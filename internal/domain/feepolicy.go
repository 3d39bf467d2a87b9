package domain

import "time"

// FeeDefinition is one entry of the operator's predefined fee schedule.
type FeeDefinition struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	UnitPrice float64 `json:"unit_price"`
	Unit      string  `json:"unit,omitempty"`
	Enabled   bool    `json:"enabled"`
}

// CustomFee is an operator-defined fee outside the predefined schedule.
type CustomFee struct {
	Label     string  `json:"label"`
	UnitPrice float64 `json:"unit_price"`
}

// FeePolicy is the per-operator fee schedule. Read-only to the engine;
// mutated only through settings.
type FeePolicy struct {
	ID             int32           `json:"id"`
	PredefinedFees []FeeDefinition `json:"predefined_fees"`
	CustomFees     []CustomFee     `json:"custom_fees"`
	UpdatedOn      time.Time       `json:"updated_on"`
}

// SelectedFee is an operator-picked line item attached on return acceptance.
// Quantity multiplies the unit price (e.g. litres short, hours late).
type SelectedFee struct {
	FeeID     string  `json:"fee_id,omitempty"`
	Label     string  `json:"label"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  float64 `json:"quantity"`
}

func (f SelectedFee) Amount() float64 {
	return f.UnitPrice * f.Quantity
}

// DefaultFeePolicy is the schedule returned when the operator has not
// customized anything yet.
func DefaultFeePolicy() *FeePolicy {
	return &FeePolicy{
		PredefinedFees: []FeeDefinition{
			{ID: "fuel_shortfall", Label: "Fuel shortfall", UnitPrice: 20, Unit: "per eighth", Enabled: true},
			{ID: "late_return", Label: "Late return", UnitPrice: 25, Unit: "per started hour", Enabled: true},
			{ID: "cleaning", Label: "Cleaning", UnitPrice: 80, Enabled: true},
			{ID: "smoking", Label: "Smoking in vehicle", UnitPrice: 150, Enabled: true},
			{ID: "damage_excess", Label: "Damage excess", UnitPrice: 500, Enabled: true},
			{ID: "missing_accessory", Label: "Missing accessory", UnitPrice: 50, Enabled: false},
		},
	}
}

// FindPredefined returns the enabled predefined fee with the given id.
func (p *FeePolicy) FindPredefined(id string) (FeeDefinition, bool) {
	for _, fee := range p.PredefinedFees {
		if fee.ID == id && fee.Enabled {
			return fee, true
		}
	}
	return FeeDefinition{}, false
}
