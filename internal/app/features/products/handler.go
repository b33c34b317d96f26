// internal/app/features/products/handler.go
package products

import (
	"context"
	"net/http"

	productstore "github.com/dalemusser/pantryhub/internal/app/store/products"
	"github.com/dalemusser/pantryhub/internal/app/system/apperrors"
	"github.com/dalemusser/pantryhub/internal/app/system/httpjson"
	"github.com/dalemusser/pantryhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the global product catalog.
type Handler struct {
	Products *productstore.Store
	Log      *zap.Logger
}

func NewHandler(products *productstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Products: products, Log: logger}
}

type createProductRequest struct {
	Barcode string `json:"barcode"`
	Name    string `json:"name"`
	Brand   string `json:"brand,omitempty"`
}

type createProductResponse struct {
	ID string `json:"id"`
}

type getProductResponse struct {
	Found   bool   `json:"found"`
	Barcode string `json:"barcode,omitempty"`
	Name    string `json:"name,omitempty"`
	Brand   string `json:"brand,omitempty"`
}

// HandleGetProduct handles GET /products/{barcode}. A missing product is a
// normal found:false result.
func (h *Handler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	barcode := chi.URLParam(r, "barcode")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Products.GetByBarcode(ctx, barcode)
	if err == mongo.ErrNoDocuments {
		httpjson.Respond(w, http.StatusOK, getProductResponse{Found: false})
		return
	}
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, getProductResponse{
		Found:   true,
		Barcode: p.Barcode,
		Name:    p.Name,
		Brand:   p.Brand,
	})
}

// HandleCreateProduct handles POST /products.
func (h *Handler) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if req.Barcode == "" || req.Name == "" {
		httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, "barcode and name are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := h.Products.Create(ctx, req.Barcode, req.Name, req.Brand)
	switch err {
	case nil:
	case productstore.ErrDuplicateBarcode:
		httpjson.Error(w, h.Log, apperrors.Wrap(apperrors.CodeConflict, "a product with this barcode already exists", err))
		return
	default:
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, createProductResponse{ID: p.ID.Hex()})
}
