package customer

import (
	"strings"
	"time"

	"github.com/ventasuite/crm-backend/internal/domain"
)

// CreateInput holds parameters for creating a customer. Name and phone
// are required; the remaining fields can be filled in later.
type CreateInput struct {
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
}

// UpdateInput holds parameters for updating a customer. Semantics match
// CreateInput: the stored row is replaced field by field.
type UpdateInput = CreateInput

func (i CreateInput) normalize() CreateInput {
	i.Name = trimPtr(i.Name)
	i.Phone = trimPtr(i.Phone)
	i.Email = trimPtr(i.Email)
	i.TaxID = trimPtr(i.TaxID)
	i.CompanyName = trimPtr(i.CompanyName)
	i.Representative = trimPtr(i.Representative)
	i.Notes = trimPtr(i.Notes)
	return i
}

// Validate validates the customer input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Phone == nil {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "required"})
	}

	check := func(field string, v *string, max int) {
		if v != nil && len(*v) > max {
			errs = append(errs, domain.FieldError{Field: field, Message: "too long"})
		}
	}
	check("name", i.Name, 200)
	check("phone", i.Phone, 32)
	check("email", i.Email, 254)
	check("tax_id", i.TaxID, 32)
	check("company_name", i.CompanyName, 200)
	check("representative", i.Representative, 200)
	check("notes", i.Notes, 2000)

	if i.Email != nil && *i.Email != "" && !strings.Contains(*i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimPtr trims a string pointer, turning whitespace-only values into nil.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
