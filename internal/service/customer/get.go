package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/domain"
	"github.com/ventasuite/crm-backend/internal/whatsapp"
)

// Detail is a customer with its contact links, ready for the detail screen.
type Detail struct {
	Customer     *domain.Customer
	WhatsAppLink string
	PhoneLink    string
	Actions      []access.Action
}

// Get returns one customer visible to the caller, with the WhatsApp and
// phone links derived from the stored number.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Detail, error) {
	scope, err := scopeFor(ctx, access.ActionView)
	if err != nil {
		return nil, err
	}

	c, err := s.customers.GetByID(ctx, scope, id)
	if err != nil {
		return nil, fmt.Errorf("customer.Get: %w", err)
	}

	d := &Detail{
		Customer: c,
		Actions:  access.Allowed(scope.Role, access.EntityCustomer, c.CreatedBy == scope.UserID),
	}
	if c.HasPhone() {
		d.WhatsAppLink = whatsapp.Link(*c.Phone, "")
		d.PhoneLink = whatsapp.TelLink(*c.Phone)
	}
	return d, nil
}
