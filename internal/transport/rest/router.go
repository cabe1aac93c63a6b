package rest

import (
	"net/http"

	"github.com/heartmarshall/cotravel-backend/internal/transport/middleware"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Invoices *InvoiceHandler
	Admin    *AdminHandler
}

// NewRouter mounts every route. Health endpoints are public; api wraps all /api routes
// and is expected to enforce authentication.
func NewRouter(h Handlers, api middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, api(fn))
	}

	inv := h.Invoices
	handle("GET /api/me", Me)
	handle("POST /api/invoices", inv.Create)
	handle("GET /api/invoices/my", inv.ListMine)
	handle("GET /api/invoices/{id}", inv.Get)
	handle("GET /api/invoices/{id}/participants", inv.Participants)
	handle("GET /api/invoices/{id}/transactions", inv.Transactions)
	handle("GET /api/invoices/{id}/modifications", inv.Modifications)
	handle("POST /api/invoices/{id}/link-contract", inv.LinkContract)
	handle("POST /api/invoices/{id}/join", inv.Join)
	handle("POST /api/invoices/{id}/contribute", inv.Contribute)
	handle("POST /api/invoices/{id}/withdraw", inv.Withdraw)
	handle("POST /api/invoices/{id}/opt-out", inv.OptOut)
	handle("POST /api/invoices/{id}/confirm", inv.Confirm)
	handle("POST /api/invoices/{id}/release", inv.Release)
	handle("POST /api/invoices/{id}/cancel", inv.Cancel)
	handle("POST /api/invoices/{id}/claim-deadline", inv.ClaimDeadline)
	handle("PUT /api/invoices/{id}/items", inv.UpdateItems)

	handle("POST /api/admin/replay", h.Admin.Replay)

	return mux
}
