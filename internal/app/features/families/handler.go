// internal/app/features/families/handler.go
package families

import (
	"context"
	"net/http"

	familystore "github.com/dalemusser/pantryhub/internal/app/store/families"
	"github.com/dalemusser/pantryhub/internal/app/system/apperrors"
	"github.com/dalemusser/pantryhub/internal/app/system/httpjson"
	"github.com/dalemusser/pantryhub/internal/app/system/timeouts"
	"github.com/dalemusser/pantryhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves family creation.
type Handler struct {
	Families *familystore.Store
	Log      *zap.Logger
}

func NewHandler(families *familystore.Store, logger *zap.Logger) *Handler {
	return &Handler{Families: families, Log: logger}
}

type createFamilyRequest struct {
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	// LoginMethod is how the caller authenticated; only externally-verified
	// identities may create shared groups.
	LoginMethod string `json:"login_method"`
}

type createFamilyResponse struct {
	ID string `json:"id"`
}

// HandleCreateFamily handles POST /families.
func (h *Handler) HandleCreateFamily(w http.ResponseWriter, r *http.Request) {
	var req createFamilyRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if req.Name == "" {
		httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, "name is required"))
		return
	}
	ownerID, err := primitive.ObjectIDFromHex(req.OwnerID)
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, "owner_id is not a valid id"))
		return
	}
	method := models.LoginMethod(req.LoginMethod)
	if !method.Valid() {
		httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, `login_method must be "email" or "google"`))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	family, err := h.Families.Create(ctx, ownerID, req.Name, models.FamilyType(req.Type), method)
	switch err {
	case nil:
	case familystore.ErrNotShareCapable:
		httpjson.Error(w, h.Log, apperrors.Wrap(apperrors.CodeForbidden, "this login method may not create a family", err))
		return
	case familystore.ErrBadType:
		httpjson.Error(w, h.Log, apperrors.Wrap(apperrors.CodeInvalid, `type must be "home" or "office"`, err))
		return
	case familystore.ErrDuplicateName:
		httpjson.Error(w, h.Log, apperrors.Wrap(apperrors.CodeConflict, "you already have a family with this name", err))
		return
	default:
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, createFamilyResponse{ID: family.ID.Hex()})
}
