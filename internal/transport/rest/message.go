package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/domain"
	"github.com/ventasuite/crm-backend/internal/service/message"
)

// messageService defines the minimal interface needed by MessageHandler.
type messageService interface {
	Send(ctx context.Context, input message.SendInput) (*message.SendReport, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*domain.Message, error)
	RegisterReceived(ctx context.Context, input message.RegisterInput) (*domain.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListScheduled(ctx context.Context) ([]*domain.ScheduledMessage, error)
	CancelScheduled(ctx context.Context, id uuid.UUID) error
}

// MessageHandler serves message REST endpoints.
type MessageHandler struct {
	svc messageService
	log *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(svc messageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, log: logger.With("handler", "message")}
}

type sendRequest struct {
	CustomerIDs   []string   `json:"customerIds"`
	Body          string     `json:"body"`
	AttachmentKey *string    `json:"attachmentKey"`
	SendAt        *time.Time `json:"sendAt"`
}

type recipientResponse struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName,omitempty"`
	Outcome      string `json:"outcome"`
	MessageID    string `json:"messageId,omitempty"`
	WhatsAppLink string `json:"whatsappLink,omitempty"`
}

type sendResponse struct {
	Recipients   []recipientResponse `json:"recipients"`
	Sent         int                 `json:"sent"`
	NoPhone      int                 `json:"noPhone"`
	MalformedIDs int                 `json:"malformedIds"`
	NotVisible   int                 `json:"notVisible"`
}

type messageResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	CustomerName  *string   `json:"customerName,omitempty"`
	Body          string    `json:"body"`
	Direction     string    `json:"direction"`
	AttachmentKey *string   `json:"attachmentKey,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type scheduledResponse struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customerId"`
	CustomerName *string    `json:"customerName,omitempty"`
	Body         string     `json:"body"`
	SendAt       time.Time  `json:"sendAt"`
	DispatchedAt *time.Time `json:"dispatchedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Send handles POST /messages/send.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.svc.Send(r.Context(), message.SendInput{
		CustomerIDs:   req.CustomerIDs,
		Body:          req.Body,
		AttachmentKey: req.AttachmentKey,
		SendAt:        req.SendAt,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSendResponse(report))
}

// ListByCustomer handles GET /customers/{id}/messages.
func (h *MessageHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	out, err := h.svc.ListByCustomer(r.Context(), customerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]messageResponse, 0, len(out))
	for _, m := range out {
		items = append(items, toMessageResponse(m))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// RegisterReceived handles POST /customers/{id}/messages/received.
func (h *MessageHandler) RegisterReceived(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.RegisterReceived(r.Context(), message.RegisterInput{
		CustomerID: customerID,
		Body:       req.Body,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(created))
}

// Get handles GET /messages/{id}.
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMessageResponse(m))
}

// Delete handles DELETE /messages/{id}.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListScheduled handles GET /messages/scheduled.
func (h *MessageHandler) ListScheduled(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListScheduled(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]scheduledResponse, 0, len(out))
	for _, sm := range out {
		items = append(items, scheduledResponse{
			ID:           sm.ID.String(),
			CustomerID:   sm.CustomerID.String(),
			CustomerName: sm.CustomerName,
			Body:         sm.Body,
			SendAt:       sm.SendAt,
			DispatchedAt: sm.DispatchedAt,
			CreatedAt:    sm.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// CancelScheduled handles DELETE /messages/scheduled/{id}.
func (h *MessageHandler) CancelScheduled(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.CancelScheduled(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toSendResponse(report *message.SendReport) sendResponse {
	recipients := make([]recipientResponse, 0, len(report.Recipients))
	for _, rr := range report.Recipients {
		resp := recipientResponse{
			CustomerID:   rr.CustomerID.String(),
			CustomerName: rr.CustomerName,
			Outcome:      string(rr.Outcome),
			WhatsAppLink: rr.WhatsAppLink,
		}
		if rr.MessageID != uuid.Nil {
			resp.MessageID = rr.MessageID.String()
		}
		recipients = append(recipients, resp)
	}
	return sendResponse{
		Recipients:   recipients,
		Sent:         report.Sent,
		NoPhone:      report.NoPhone,
		MalformedIDs: report.MalformedIDs,
		NotVisible:   report.NotVisible,
	}
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:            m.ID.String(),
		CustomerID:    m.CustomerID.String(),
		CustomerName:  m.CustomerName,
		Body:          m.Body,
		Direction:     m.Direction.String(),
		AttachmentKey: m.AttachmentKey,
		CreatedAt:     m.CreatedAt,
	}
}
