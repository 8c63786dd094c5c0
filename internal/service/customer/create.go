package customer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/domain"
)

// Create saves a new customer record owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Customer, error) {
	scope, err := scopeFor(ctx, access.ActionCreate)
	if err != nil {
		return nil, err
	}

	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := &domain.Customer{
		ID:             uuid.New(),
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		TaxID:          input.TaxID,
		CompanyName:    input.CompanyName,
		Representative: input.Representative,
		Notes:          input.Notes,
		NextCallAt:     input.NextCallAt,
		NextVisitAt:    input.NextVisitAt,
		NextMeetingAt:  input.NextMeetingAt,
		CreatedBy:      scope.UserID,
	}

	created, err := s.customers.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("customer.Create: %w", err)
	}

	s.log.InfoContext(ctx, "customer created",
		slog.String("customer_id", created.ID.String()))

	return created, nil
}
