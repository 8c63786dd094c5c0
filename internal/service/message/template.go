package message

import (
	"fmt"

	"github.com/ventasuite/crm-backend/internal/domain"
)

// renderBody produces the text persisted and handed to WhatsApp for one
// recipient. In a multi-recipient batch, a customer carrying both a contact
// name and a company name gets a personalized greeting instead of the
// literal body; everyone else receives the body as written.
func renderBody(c *domain.Customer, body string, batch bool) string {
	if !batch {
		return body
	}
	if c.Name == nil || *c.Name == "" || c.CompanyName == nil || *c.CompanyName == "" {
		return body
	}
	return fmt.Sprintf("Estimado(a) %s de %s:\n\n%s", *c.Name, *c.CompanyName, body)
}
