// internal/app/features/items/handler.go
package items

import (
	"context"
	"net/http"
	"time"

	itemstore "github.com/dalemusser/pantryhub/internal/app/store/items"
	"github.com/dalemusser/pantryhub/internal/app/system/apperrors"
	"github.com/dalemusser/pantryhub/internal/app/system/httpjson"
	"github.com/dalemusser/pantryhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// dateLayout is the wire format for calendar dates. Dates carry no time or
// zone component; they are stored as UTC midnight.
const dateLayout = "2006-01-02"

// Handler serves inventory item creation.
type Handler struct {
	Items *itemstore.Store
	Log   *zap.Logger
}

func NewHandler(items *itemstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Items: items, Log: logger}
}

type addItemRequest struct {
	FamilyID         string `json:"family_id"`
	UserID           string `json:"user_id"`
	Name             string `json:"name"`
	Barcode          string `json:"barcode,omitempty"`
	ExpirationDate   string `json:"expiration_date"`
	NotifyEnabled    bool   `json:"notify_enabled"`
	NotifyBeforeDays int    `json:"notify_before_days"`
	Storage          string `json:"storage,omitempty"`
	Photo            string `json:"photo,omitempty"`
}

type addItemResponse struct {
	ID         string `json:"id"`
	NotifyDate string `json:"notify_date,omitempty"`
}

// HandleAddItem handles POST /items.
func (h *Handler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if req.Name == "" {
		httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, "name is required"))
		return
	}
	familyID, err := primitive.ObjectIDFromHex(req.FamilyID)
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, "family_id is not a valid id"))
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, "user_id is not a valid id"))
		return
	}
	expiration, err := time.ParseInLocation(dateLayout, req.ExpirationDate, time.UTC)
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, "expiration_date must be YYYY-MM-DD"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, err := h.Items.Add(ctx, itemstore.NewItem{
		FamilyID:       familyID,
		CreatedBy:      userID,
		Name:           req.Name,
		Barcode:        req.Barcode,
		ExpirationDate: expiration,
		NotifyEnabled:  req.NotifyEnabled,
		NotifyDays:     req.NotifyBeforeDays,
		Storage:        req.Storage,
		Photo:          req.Photo,
	})
	switch err {
	case nil:
	case itemstore.ErrNotFamilyMember:
		httpjson.Error(w, h.Log, apperrors.Wrap(apperrors.CodeForbidden, "you are not a member of this family", err))
		return
	case itemstore.ErrDuplicateName:
		httpjson.Error(w, h.Log, apperrors.Wrap(apperrors.CodeConflict, "an item with this name already exists in this family", err))
		return
	default:
		httpjson.Error(w, h.Log, err)
		return
	}

	resp := addItemResponse{ID: item.ID.Hex()}
	if item.Notify.NotifyDate != nil {
		resp.NotifyDate = item.Notify.NotifyDate.Format(dateLayout)
	}
	httpjson.Respond(w, http.StatusCreated, resp)
}
