package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a CRM customer record. All descriptive fields are optional;
// the three Next*At timestamps drive the upcoming-contact filters.
type Customer struct {
	ID             uuid.UUID
	Name           *string
	Phone          *string
	Email          *string
	TaxID          *string
	CompanyName    *string
	Representative *string
	Notes          *string
	NextCallAt     *time.Time
	NextVisitAt    *time.Time
	NextMeetingAt  *time.Time
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasPhone reports whether the customer has a non-empty phone number.
func (c *Customer) HasPhone() bool {
	return c.Phone != nil && *c.Phone != ""
}

// DisplayName returns the customer's name, or an empty string.
func (c *Customer) DisplayName() string {
	if c.Name == nil {
		return ""
	}
	return *c.Name
}
