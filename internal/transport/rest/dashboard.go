package rest

import (
	"context"
	"log/slog"
	"net/http"
)

// dashboardCounters aggregates the role-scoped counts shown on the home
// screen. Each count respects the caller's visibility.
type dashboardCounters interface {
	CustomerCount(ctx context.Context) (int, error)
	MessageCount(ctx context.Context) (int, error)
	PendingReminderCount(ctx context.Context) (int, error)
}

// DashboardHandler serves the dashboard counters endpoint.
type DashboardHandler struct {
	counters dashboardCounters
	log      *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(counters dashboardCounters, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{counters: counters, log: logger.With("handler", "dashboard")}
}

type dashboardResponse struct {
	Customers        int `json:"customers"`
	Messages         int `json:"messages"`
	PendingReminders int `json:"pendingReminders"`
}

// Summary handles GET /dashboard.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customers, err := h.counters.CustomerCount(ctx)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	messages, err := h.counters.MessageCount(ctx)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	reminders, err := h.counters.PendingReminderCount(ctx)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Customers:        customers,
		Messages:         messages,
		PendingReminders: reminders,
	})
}
