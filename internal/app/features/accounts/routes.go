// internal/app/features/accounts/routes.go
package accounts

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for account endpoints; it is mounted under
// /users.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleCreateUser)
	r.Post("/link-google", h.HandleLinkGoogle)
	return r
}
