package message

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/domain"
)

// SendInput holds parameters for the fan-out send operation. CustomerIDs
// arrive as raw strings from the client; malformed entries are silently
// dropped during parsing rather than failing the whole batch.
type SendInput struct {
	CustomerIDs   []string
	Body          string
	AttachmentKey *string
	// SendAt switches the operation into schedule mode: nothing is
	// persisted to the message history until the dispatcher runs.
	SendAt *time.Time
}

// Validate validates the send input. maxRecipients bounds the parsed,
// well-formed recipient set.
func (i SendInput) Validate(maxRecipients int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Body) == "" && i.AttachmentKey == nil {
		errs = append(errs, domain.FieldError{Field: "body", Message: "message body or attachment required"})
	}
	if len(i.Body) > domain.MaxMessageBodyLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "too long"})
	}
	if len(i.CustomerIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "customer_ids", Message: "at least one recipient required"})
	}
	if len(i.CustomerIDs) > maxRecipients {
		errs = append(errs, domain.FieldError{Field: "customer_ids", Message: "too many recipients"})
	}
	if i.SendAt != nil && i.SendAt.Before(time.Now()) {
		errs = append(errs, domain.FieldError{Field: "send_at", Message: "must be in the future"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// parseRecipientIDs keeps the well-formed UUIDs and counts the rest.
// Duplicates are collapsed so one customer never receives twice per batch.
func parseRecipientIDs(raw []string) (ids []uuid.UUID, malformed int) {
	seen := make(map[uuid.UUID]struct{}, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil || id == uuid.Nil {
			malformed++
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, malformed
}

// RegisterInput holds parameters for recording a received message.
type RegisterInput struct {
	CustomerID uuid.UUID
	Body       string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}
	if strings.TrimSpace(i.Body) == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if len(i.Body) > domain.MaxMessageBodyLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
