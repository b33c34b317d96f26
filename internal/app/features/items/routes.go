// internal/app/features/items/routes.go
package items

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for item endpoints; it is mounted under /items.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleAddItem)
	return r
}
