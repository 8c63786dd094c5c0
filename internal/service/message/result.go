package message

import "github.com/google/uuid"

// RecipientOutcome classifies what happened to one recipient of a batch.
type RecipientOutcome string

const (
	// OutcomeSent means the message was persisted and, when a phone was
	// present, a WhatsApp link produced.
	OutcomeSent RecipientOutcome = "sent"
	// OutcomeNoPhone means the message was persisted but no hand-off
	// link could be built.
	OutcomeNoPhone RecipientOutcome = "no_phone"
	// OutcomeBodyTooLong means the rendered body exceeded the cap and
	// this recipient was skipped.
	OutcomeBodyTooLong RecipientOutcome = "body_too_long"
)

// RecipientResult is the per-recipient line of a send report.
type RecipientResult struct {
	CustomerID   uuid.UUID
	CustomerName string
	Outcome      RecipientOutcome
	MessageID    uuid.UUID
	WhatsAppLink string
}

// SendReport summarizes a fan-out batch. A batch where some recipients
// lacked a phone number is a partial success, not an error.
type SendReport struct {
	Recipients []RecipientResult
	// MalformedIDs counts identifiers dropped during parsing.
	MalformedIDs int
	// NotVisible counts well-formed identifiers that matched no customer
	// within the caller's scope.
	NotVisible int
	Sent       int
	NoPhone    int
}
