package rest

import "net/http"

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	Customers   *CustomerHandler
	Messages    *MessageHandler
	Reminders   *ReminderHandler
	Users       *UserHandler
	Attachments *AttachmentHandler
	Dashboard   *DashboardHandler
	Health      *HealthHandler
}

// NewRouter mounts all REST routes on a ServeMux. Authentication and the
// rest of the middleware stack wrap the returned handler at the server
// level; role checks live in the services.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/v1/customers", h.Customers.List)
	mux.HandleFunc("POST /api/v1/customers", h.Customers.Create)
	mux.HandleFunc("GET /api/v1/customers/{id}", h.Customers.Get)
	mux.HandleFunc("PUT /api/v1/customers/{id}", h.Customers.Update)
	mux.HandleFunc("DELETE /api/v1/customers/{id}", h.Customers.Delete)

	mux.HandleFunc("GET /api/v1/customers/{id}/messages", h.Messages.ListByCustomer)
	mux.HandleFunc("POST /api/v1/customers/{id}/messages/received", h.Messages.RegisterReceived)
	mux.HandleFunc("POST /api/v1/messages/send", h.Messages.Send)
	mux.HandleFunc("GET /api/v1/messages/{id}", h.Messages.Get)
	mux.HandleFunc("DELETE /api/v1/messages/{id}", h.Messages.Delete)
	mux.HandleFunc("GET /api/v1/messages/scheduled", h.Messages.ListScheduled)
	mux.HandleFunc("DELETE /api/v1/messages/scheduled/{id}", h.Messages.CancelScheduled)

	mux.HandleFunc("GET /api/v1/reminders", h.Reminders.List)
	mux.HandleFunc("POST /api/v1/reminders", h.Reminders.Create)
	mux.HandleFunc("GET /api/v1/reminders/{id}", h.Reminders.Get)
	mux.HandleFunc("PUT /api/v1/reminders/{id}", h.Reminders.Update)
	mux.HandleFunc("POST /api/v1/reminders/{id}/toggle", h.Reminders.Toggle)
	mux.HandleFunc("DELETE /api/v1/reminders/{id}", h.Reminders.Delete)

	mux.HandleFunc("GET /api/v1/users", h.Users.List)
	mux.HandleFunc("POST /api/v1/users", h.Users.Create)
	mux.HandleFunc("PUT /api/v1/users/{id}/role", h.Users.SetRole)
	mux.HandleFunc("PUT /api/v1/users/{id}/profile", h.Users.UpdateProfile)
	mux.HandleFunc("PUT /api/v1/users/{id}/email", h.Users.SetEmail)
	mux.HandleFunc("PUT /api/v1/users/{id}/password", h.Users.SetPassword)
	mux.HandleFunc("DELETE /api/v1/users/{id}", h.Users.Delete)

	mux.HandleFunc("GET /api/v1/dashboard", h.Dashboard.Summary)

	if h.Attachments != nil {
		mux.HandleFunc("POST /api/v1/attachments", h.Attachments.Upload)
	}

	return mux
}
