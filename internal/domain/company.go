package domain

import "time"

// Company is the operator's business profile, printed on generated contracts.
type Company struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	SIRET     string `json:"siret,omitempty"`
	LogoURL   string `json:"logo_url,omitempty"`
	UpdatedOn time.Time `json:"updated_on"`
}
