// Package contract renders rental agreement documents. Rendering is a pure
// function of its inputs: identical inputs produce identical bytes.
package contract

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Pagajob/easyold-sub001/internal/domain"
)

// Inputs is everything a contract document is built from.
type Inputs struct {
	Reservation *domain.Reservation
	Client      *domain.Client
	Vehicle     *domain.Vehicle
	Company     *domain.Company
	FeePolicy   *domain.FeePolicy
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("contract").Funcs(template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"deref": func(p *float64) float64 {
			if p == nil {
				return 0
			}
			return *p
		},
		"date": func(t interface{ Format(string) string }) string { return t.Format("2006-01-02 15:04") },
	}).Parse(contractTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the contract document for the given inputs.
func (r *Renderer) Render(in Inputs) ([]byte, error) {
	if in.Reservation == nil || in.Client == nil || in.Vehicle == nil {
		return nil, fmt.Errorf("reservation, client and vehicle are required")
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, in); err != nil {
		return nil, fmt.Errorf("failed to render contract: %w", err)
	}
	return buf.Bytes(), nil
}

const contractTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Rental agreement #{{ .Reservation.ID }}</title></head>
<body>
<h1>{{ if .Company }}{{ .Company.Name }}{{ else }}Rental agreement{{ end }}</h1>
{{ if .Company }}<p>{{ .Company.Address }}{{ if .Company.SIRET }} — SIRET {{ .Company.SIRET }}{{ end }}</p>{{ end }}

<h2>{{ if eq .Reservation.ContractType "FREE_LOAN" }}Free loan agreement{{ else }}Rental agreement{{ end }} #{{ .Reservation.ID }}</h2>

<h3>Lessee</h3>
<p>{{ .Client.FullName }}{{ if .Client.Email }}<br>{{ .Client.Email }}{{ end }}{{ if .Client.Phone }}<br>{{ .Client.Phone }}{{ end }}
{{ if .Client.LicenceNumber }}<br>Licence {{ .Client.LicenceNumber }}{{ if .Client.LicenceDate }} issued {{ .Client.LicenceDate }}{{ end }}{{ end }}</p>

<h3>Vehicle</h3>
<p>{{ .Vehicle.Brand }} {{ .Vehicle.Model }} — {{ .Vehicle.PlateNumber }}</p>
<table>
<tr><td>Daily mileage allowance</td><td>{{ .Vehicle.DailyKmAllowance }} km</td></tr>
<tr><td>Price per extra kilometer</td><td>{{ money .Vehicle.PricePerExtraKm }}</td></tr>
<tr><td>Deposit</td><td>{{ money .Vehicle.DepositAmount }}</td></tr>
<tr><td>Damage excess</td><td>{{ money .Vehicle.DepositExcess }}</td></tr>
{{ if .Vehicle.MinDriverAge }}<tr><td>Minimum driver age</td><td>{{ .Vehicle.MinDriverAge }}</td></tr>{{ end }}
{{ if .Vehicle.MinLicenceYears }}<tr><td>Minimum licence age</td><td>{{ .Vehicle.MinLicenceYears }} years</td></tr>{{ end }}
</table>

<h3>Rental period</h3>
<p>From {{ date .Reservation.StartDate }} to {{ date .Reservation.ExpectedEndDate }}</p>
{{ if .Reservation.RentalAmount }}<p>Rental amount: {{ money (deref .Reservation.RentalAmount) }}</p>{{ end }}

{{ if .Reservation.DepartureReport }}
<h3>Departure condition</h3>
<table>
{{ if .Reservation.DepartureReport.Odometer }}<tr><td>Odometer</td><td>{{ .Reservation.DepartureReport.Odometer }} km</td></tr>{{ end }}
{{ if .Reservation.DepartureReport.FuelLevel }}<tr><td>Fuel level</td><td>{{ .Reservation.DepartureReport.FuelLevel }}/8</td></tr>{{ end }}
</table>
{{ if .Reservation.DepartureReport.Notes }}<p>{{ .Reservation.DepartureReport.Notes }}</p>{{ end }}
{{ end }}

{{ if .FeePolicy }}
<h3>Applicable fees</h3>
<table>
{{ range .FeePolicy.PredefinedFees }}{{ if .Enabled }}<tr><td>{{ .Label }}</td><td>{{ money .UnitPrice }}{{ if .Unit }} {{ .Unit }}{{ end }}</td></tr>
{{ end }}{{ end }}{{ range .FeePolicy.CustomFees }}<tr><td>{{ .Label }}</td><td>{{ money .UnitPrice }}</td></tr>
{{ end }}</table>
{{ end }}

<h3>Signatures</h3>
<p>Signed by the lessee{{ if .Reservation.SignatureRef }} (ref {{ .Reservation.SignatureRef }}){{ end }} at departure.</p>
</body>
</html>
`
