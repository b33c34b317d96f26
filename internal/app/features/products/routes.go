// internal/app/features/products/routes.go
package products

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for product catalog endpoints; it is mounted
// under /products.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{barcode}", h.HandleGetProduct)
	r.Post("/", h.HandleCreateProduct)
	return r
}
