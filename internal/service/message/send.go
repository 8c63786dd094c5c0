package message

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/access"
	"github.com/ventasuite/crm-backend/internal/domain"
	"github.com/ventasuite/crm-backend/internal/whatsapp"
)

// Send fans a message out to the selected customers. Each visible
// recipient gets their own persisted message; recipients with a phone
// number also get a WhatsApp deep link carrying the rendered text.
//
// Persists are sequential and not atomic: a failure aborts the loop but
// keeps the messages already written, and the report reflects how far the
// batch got. With SendAt set the batch is stored for the dispatcher
// instead of being sent now.
func (s *Service) Send(ctx context.Context, input SendInput) (*SendReport, error) {
	action := access.ActionSend
	if input.SendAt != nil {
		action = access.ActionSchedule
	}
	scope, err := scopeFor(ctx, action)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.cfg.MaxRecipientsPerSend); err != nil {
		return nil, err
	}

	ids, malformed := parseRecipientIDs(input.CustomerIDs)
	report := &SendReport{MalformedIDs: malformed}
	if len(ids) == 0 {
		return nil, domain.NewValidationError("customer_ids", "no well-formed recipient identifiers")
	}

	recipients, err := s.customers.GetManyByIDs(ctx, scope, ids)
	if err != nil {
		return nil, fmt.Errorf("message.Send load recipients: %w", err)
	}
	report.NotVisible = len(ids) - len(recipients)

	batch := len(recipients) > 1

	for _, c := range recipients {
		rendered := renderBody(c, input.Body, batch)
		if len(rendered) > domain.MaxMessageBodyLen {
			report.Recipients = append(report.Recipients, RecipientResult{
				CustomerID:   c.ID,
				CustomerName: c.DisplayName(),
				Outcome:      OutcomeBodyTooLong,
			})
			continue
		}

		if input.SendAt != nil {
			if err := s.scheduleOne(ctx, scope, c, rendered, input); err != nil {
				return report, err
			}
		} else {
			if err := s.sendOne(ctx, scope, c, rendered, input, report); err != nil {
				return report, err
			}
			continue
		}

		report.Recipients = append(report.Recipients, RecipientResult{
			CustomerID:   c.ID,
			CustomerName: c.DisplayName(),
			Outcome:      OutcomeSent,
		})
		report.Sent++
	}

	s.log.InfoContext(ctx, "message batch processed",
		slog.Int("sent", report.Sent),
		slog.Int("no_phone", report.NoPhone),
		slog.Int("malformed", report.MalformedIDs),
		slog.Int("not_visible", report.NotVisible),
		slog.Bool("scheduled", input.SendAt != nil))

	return report, nil
}

func (s *Service) sendOne(ctx context.Context, scope access.Scope, c *domain.Customer, rendered string, input SendInput, report *SendReport) error {
	m := &domain.Message{
		ID:            uuid.New(),
		CustomerID:    c.ID,
		Body:          rendered,
		Direction:     domain.DirectionSent,
		AttachmentKey: input.AttachmentKey,
		CreatedBy:     scope.UserID,
	}

	created, err := s.messages.Create(ctx, m)
	if err != nil {
		return fmt.Errorf("message.Send persist for customer %s: %w", c.ID, err)
	}

	result := RecipientResult{
		CustomerID:   c.ID,
		CustomerName: c.DisplayName(),
		MessageID:    created.ID,
	}
	if c.HasPhone() {
		result.Outcome = OutcomeSent
		result.WhatsAppLink = whatsapp.Link(*c.Phone, rendered)
		report.Sent++
	} else {
		result.Outcome = OutcomeNoPhone
		report.NoPhone++
	}

	report.Recipients = append(report.Recipients, result)
	return nil
}

func (s *Service) scheduleOne(ctx context.Context, scope access.Scope, c *domain.Customer, rendered string, input SendInput) error {
	sm := &domain.ScheduledMessage{
		ID:            uuid.New(),
		CustomerID:    c.ID,
		Body:          rendered,
		SendAt:        *input.SendAt,
		AttachmentKey: input.AttachmentKey,
		CreatedBy:     scope.UserID,
	}
	if _, err := s.scheduled.Create(ctx, sm); err != nil {
		return fmt.Errorf("message.Send schedule for customer %s: %w", c.ID, err)
	}
	return nil
}
