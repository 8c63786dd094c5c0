package customer

import (
	"context"
	"fmt"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/adapter/postgres/customer"
	"github.com/ventasuite/crm-backend/internal/domain"
)

// ListInput holds parameters for listing customers.
type ListInput struct {
	// UpcomingContact keeps only customers with the given next-contact
	// date set. Empty means no filter.
	UpcomingContact string
	Limit           int
	Offset          int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.UpcomingContact != "" && !domain.ContactKind(i.UpcomingContact).IsValid() {
		errs = append(errs, domain.FieldError{Field: "upcoming_contact", Message: "must be call, visit, or meeting"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns the customers visible to the caller, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Customer, error) {
	scope, err := scopeFor(ctx, access.ActionView)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := customer.Filter{Limit: input.Limit, Offset: input.Offset}
	if input.UpcomingContact != "" {
		kind := domain.ContactKind(input.UpcomingContact)
		f.UpcomingContact = &kind
	}

	out, err := s.customers.List(ctx, scope, f)
	if err != nil {
		return nil, fmt.Errorf("customer.List: %w", err)
	}
	return out, nil
}

// Count returns how many customers the caller can see.
func (s *Service) Count(ctx context.Context) (int, error) {
	scope, err := scopeFor(ctx, access.ActionView)
	if err != nil {
		return 0, err
	}

	count, err := s.customers.Count(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("customer.Count: %w", err)
	}
	return count, nil
}
