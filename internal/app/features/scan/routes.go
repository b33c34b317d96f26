// internal/app/features/scan/routes.go
package scan

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the scan endpoint; it is mounted under
// /scan.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{barcode}", h.HandleScan)
	return r
}
