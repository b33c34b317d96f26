// internal/app/features/families/routes.go
package families

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for family endpoints; it is mounted under
// /families.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleCreateFamily)
	return r
}
