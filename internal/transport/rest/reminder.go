package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/domain"
	"github.com/ventasuite/crm-backend/internal/service/reminder"
)

// reminderService defines the minimal interface needed by ReminderHandler.
type reminderService interface {
	Create(ctx context.Context, input reminder.CreateInput) (*domain.Reminder, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	List(ctx context.Context, input reminder.ListInput) ([]*domain.Reminder, error)
	Update(ctx context.Context, id uuid.UUID, input reminder.UpdateInput) (*domain.Reminder, error)
	Toggle(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReminderHandler serves reminder REST endpoints.
type ReminderHandler struct {
	svc reminderService
	log *slog.Logger
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(svc reminderService, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{svc: svc, log: logger.With("handler", "reminder")}
}

type reminderRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueAt       time.Time  `json:"dueAt"`
	CustomerID  *uuid.UUID `json:"customerId"`
}

type reminderResponse struct {
	ID           string     `json:"id"`
	CustomerID   *uuid.UUID `json:"customerId,omitempty"`
	CustomerName *string    `json:"customerName,omitempty"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	DueAt        time.Time  `json:"dueAt"`
	Completed    bool       `json:"completed"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func toReminderResponse(rem *domain.Reminder) reminderResponse {
	return reminderResponse{
		ID:           rem.ID.String(),
		CustomerID:   rem.CustomerID,
		CustomerName: rem.CustomerName,
		Title:        rem.Title,
		Description:  rem.Description,
		DueAt:        rem.DueAt,
		Completed:    rem.Completed,
		CreatedAt:    rem.CreatedAt,
		UpdatedAt:    rem.UpdatedAt,
	}
}

// Create handles POST /reminders.
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), reminder.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		DueAt:       req.DueAt,
		CustomerID:  req.CustomerID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReminderResponse(created))
}

// List handles GET /reminders?status=pending.
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context(), reminder.ListInput{
		Status: domain.ReminderStatus(r.URL.Query().Get("status")),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]reminderResponse, 0, len(out))
	for _, rem := range out {
		items = append(items, toReminderResponse(rem))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Get handles GET /reminders/{id}.
func (h *ReminderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	rem, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReminderResponse(rem))
}

// Update handles PUT /reminders/{id}.
func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req reminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, reminder.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		DueAt:       req.DueAt,
		CustomerID:  req.CustomerID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReminderResponse(updated))
}

// Toggle handles POST /reminders/{id}/toggle.
func (h *ReminderHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	updated, err := h.svc.Toggle(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReminderResponse(updated))
}

// Delete handles DELETE /reminders/{id}.
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
