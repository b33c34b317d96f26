// internal/app/features/scan/handler.go
package scan

import (
	"context"
	"net/http"

	itemstore "github.com/dalemusser/pantryhub/internal/app/store/items"
	productstore "github.com/dalemusser/pantryhub/internal/app/store/products"
	"github.com/dalemusser/pantryhub/internal/app/system/apperrors"
	"github.com/dalemusser/pantryhub/internal/app/system/httpjson"
	"github.com/dalemusser/pantryhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the barcode scan lookup: a read-only join of an item in a
// family with the global product catalog.
type Handler struct {
	Items    *itemstore.Store
	Products *productstore.Store
	Log      *zap.Logger
}

func NewHandler(items *itemstore.Store, products *productstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Items: items, Products: products, Log: logger}
}

type scanResponse struct {
	Found        bool    `json:"found"`
	ItemName     string  `json:"item_name,omitempty"`
	Storage      string  `json:"storage,omitempty"`
	Photo        string  `json:"photo,omitempty"`
	ProductName  *string `json:"product_name"`
	ProductBrand *string `json:"product_brand"`
}

// HandleScan handles GET /scan/{barcode}?family_id=.
//
// No item under the barcode is a normal found:false result, never an error.
// When an item is found, the catalog lookup may still come up empty; the
// product fields are then null while the item fields are populated.
//
// NOTE: this endpoint does not verify that the caller belongs to the family;
// it trusts possession of the family id. Other item operations do check
// membership, so any item route added here later should too.
func (h *Handler) HandleScan(w http.ResponseWriter, r *http.Request) {
	barcode := chi.URLParam(r, "barcode")
	familyID, err := primitive.ObjectIDFromHex(r.URL.Query().Get("family_id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, "family_id is not a valid id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, err := h.Items.FindByBarcode(ctx, familyID, barcode)
	if err == mongo.ErrNoDocuments {
		httpjson.Respond(w, http.StatusOK, scanResponse{Found: false})
		return
	}
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	resp := scanResponse{
		Found:    true,
		ItemName: item.Name,
		Storage:  item.Storage,
		Photo:    item.Photo,
	}

	product, err := h.Products.GetByBarcode(ctx, barcode)
	switch err {
	case nil:
		resp.ProductName = &product.Name
		if product.Brand != "" {
			resp.ProductBrand = &product.Brand
		}
	case mongo.ErrNoDocuments:
		// Item without catalog entry: product fields stay null.
	default:
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, resp)
}
