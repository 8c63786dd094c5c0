package user

import (
	"strings"

	"github.com/ventasuite/crm-backend/internal/domain"
)

const (
	maxEmailLen    = 254
	maxPasswordLen = 72
	maxNameLen     = 100
	maxPhoneLen    = 32
)

// CreateInput holds parameters for an administrator creating an account.
type CreateInput struct {
	Email     string
	Password  string
	Role      domain.UserRole
	FirstName *string
	LastName  *string
	Phone     *string
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (i *CreateInput) normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.FirstName = trimPtr(i.FirstName)
	i.LastName = trimPtr(i.LastName)
	i.Phone = trimPtr(i.Phone)
}

// Validate validates the create input.
func (i CreateInput) Validate(minPasswordLen int) error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(i.Email, "@") || len(i.Email) > maxEmailLen {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid"})
	}
	if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	}
	if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}
	if i.FirstName != nil && len(*i.FirstName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}
	if i.LastName != nil && len(*i.LastName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}
	if i.Phone != nil && len(*i.Phone) > maxPhoneLen {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfileInput holds the profile fields an administrator may rewrite.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

func (i *UpdateProfileInput) normalize() {
	i.FirstName = trimPtr(i.FirstName)
	i.LastName = trimPtr(i.LastName)
	i.Phone = trimPtr(i.Phone)
}

// Validate validates the profile update input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.FirstName != nil && len(*i.FirstName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}
	if i.LastName != nil && len(*i.LastName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}
	if i.Phone != nil && len(*i.Phone) > maxPhoneLen {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
