package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ledgerline/expense-service/internal/application"
)

// Handler is the HTTP adapter entrypoint for the expense API.
// Keeping only the application dependency here preserves clean adapter boundaries.
type Handler struct {
	service        *application.Service
	cookieSecure   bool
	cookieSameSite http.SameSite
}

// CookieSettings controls the transport attributes of the token cookie.
// Production runs Secure with SameSite=None; development relaxes both so
// plain-HTTP local clients keep working.
type CookieSettings struct {
	Secure   bool
	SameSite http.SameSite
}

// NewHandler constructs an HTTP handler bound to the application service.
func NewHandler(service *application.Service, cookies CookieSettings) *Handler {
	sameSite := cookies.SameSite
	if sameSite == 0 {
		sameSite = http.SameSiteLaxMode
	}
	return &Handler{
		service:        service,
		cookieSecure:   cookies.Secure,
		cookieSameSite: sameSite,
	}
}

// NewRouter registers the HTTP routes and middleware stack.
// Centralizing routes here ensures consistent auth and error behavior across endpoints.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Route("/user", func(r chi.Router) {
		r.Post("/register", handler.register)
		r.Post("/login", handler.login)
		// Logout is outside the gate on purpose: it must accept expired
		// or malformed tokens and still revoke them.
		r.Post("/logout", handler.logout)

		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Get("/me", handler.me)
		})
	})

	r.Route("/cash", func(r chi.Router) {
		r.Use(handler.authMiddleware)
		r.Post("/", handler.listCashflows)
		r.Post("/add", handler.addCashflow)
		r.Put("/update", handler.updateCashflow)
		r.Delete("/delete", handler.deleteCashflow)
		r.Post("/{cashflowId}", handler.getCashflow)
	})

	return r
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "ok")
}

func (h *Handler) readyz(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "ready")
}
