package domain

import "time"

type Client struct {
	ID        int32  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// Email is optional on the record but required before a contract can be
	// generated and delivered.
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	BirthDate     string `json:"birth_date,omitempty"`
	LicenceNumber string `json:"licence_number,omitempty"`
	LicenceDate   string `json:"licence_date,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

func (c *Client) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}
