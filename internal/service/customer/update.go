package customer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/domain"
)

// Update replaces a customer's editable fields. Advisors can only update
// customers they created; rows outside the caller's scope report ErrNotFound.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Customer, error) {
	scope, err := scopeFor(ctx, access.ActionUpdate)
	if err != nil {
		return nil, err
	}

	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := &domain.Customer{
		ID:             id,
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
	}

	updated, err := s.customers.Update(ctx, scope, c)
	if err != nil {
		return nil, fmt.Errorf("customer.Update: %w", err)
	}

	s.log.InfoContext(ctx, "customer updated",
		slog.String("customer_id", id.String()))

	return updated, nil
}

// Delete removes a customer and everything hanging off it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	scope, err := scopeFor(ctx, access.ActionDelete)
	if err != nil {
		return err
	}

	if err := s.customers.Delete(ctx, scope, id); err != nil {
		return fmt.Errorf("customer.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "customer deleted",
		slog.String("customer_id", id.String()))

	return nil
}
