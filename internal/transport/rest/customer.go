package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ventasuite/crm-backend/internal/domain"
	"github.com/ventasuite/crm-backend/internal/service/customer"
)

// customerService defines the minimal interface needed by CustomerHandler.
type customerService interface {
	Create(ctx context.Context, input customer.CreateInput) (*domain.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*customer.Detail, error)
	List(ctx context.Context, input customer.ListInput) ([]*domain.Customer, error)
	Update(ctx context.Context, id uuid.UUID, input customer.UpdateInput) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CustomerHandler serves customer REST endpoints.
type CustomerHandler struct {
	svc customerService
	log *slog.Logger
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(svc customerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{svc: svc, log: logger.With("handler", "customer")}
}

type customerRequest struct {
	Name           *string    `json:"name"`
	Phone          *string    `json:"phone"`
	Email          *string    `json:"email"`
	TaxID          *string    `json:"taxId"`
	CompanyName    *string    `json:"companyName"`
	Representative *string    `json:"representative"`
	Notes          *string    `json:"notes"`
	NextCallAt     *time.Time `json:"nextCallAt"`
	NextVisitAt    *time.Time `json:"nextVisitAt"`
	NextMeetingAt  *time.Time `json:"nextMeetingAt"`
}

func (req customerRequest) toInput() customer.CreateInput {
	return customer.CreateInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		TaxID:          req.TaxID,
		CompanyName:    req.CompanyName,
		Representative: req.Representative,
		Notes:          req.Notes,
		NextCallAt:     req.NextCallAt,
		NextVisitAt:    req.NextVisitAt,
		NextMeetingAt:  req.NextMeetingAt,
	}
}

type customerResponse struct {
	ID             string     `json:"id"`
	Name           *string    `json:"name,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	Email          *string    `json:"email,omitempty"`
	TaxID          *string    `json:"taxId,omitempty"`
	CompanyName    *string    `json:"companyName,omitempty"`
	Representative *string    `json:"representative,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	NextCallAt     *time.Time `json:"nextCallAt,omitempty"`
	NextVisitAt    *time.Time `json:"nextVisitAt,omitempty"`
	NextMeetingAt  *time.Time `json:"nextMeetingAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type customerDetailResponse struct {
	customerResponse
	WhatsAppLink string   `json:"whatsappLink,omitempty"`
	PhoneLink    string   `json:"phoneLink,omitempty"`
	Actions      []string `json:"actions"`
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		TaxID:          c.TaxID,
		CompanyName:    c.CompanyName,
		Representative: c.Representative,
		Notes:          c.Notes,
		NextCallAt:     c.NextCallAt,
		NextVisitAt:    c.NextVisitAt,
		NextMeetingAt:  c.NextMeetingAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCustomerResponse(created))
}

// Get handles GET /customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	actions := make([]string, 0, len(detail.Actions))
	for _, a := range detail.Actions {
		actions = append(actions, string(a))
	}

	writeJSON(w, http.StatusOK, customerDetailResponse{
		customerResponse: toCustomerResponse(detail.Customer),
		WhatsAppLink:     detail.WhatsAppLink,
		PhoneLink:        detail.PhoneLink,
		Actions:          actions,
	})
}

// List handles GET /customers?upcoming=call&limit=50&offset=0.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	input := customer.ListInput{
		UpcomingContact: r.URL.Query().Get("upcoming"),
		Limit:           queryInt(r, "limit", 0),
		Offset:          queryInt(r, "offset", 0),
	}

	out, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]customerResponse, 0, len(out))
	for _, c := range out {
		items = append(items, toCustomerResponse(c))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Update handles PUT /customers/{id}.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(updated))
}

// Delete handles DELETE /customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
