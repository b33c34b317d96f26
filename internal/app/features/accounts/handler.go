// internal/app/features/accounts/handler.go
package accounts

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/pantryhub/internal/app/store/users"
	"github.com/dalemusser/pantryhub/internal/app/system/apperrors"
	"github.com/dalemusser/pantryhub/internal/app/system/httpjson"
	"github.com/dalemusser/pantryhub/internal/app/system/timeouts"
	"github.com/dalemusser/pantryhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves account creation and credential linking.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

func NewHandler(users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Log: logger}
}

// HandleCreateUser handles POST /users.
//
// Exactly one credential form must be present: email+password together, or a
// Google token. A request carrying neither (or half of the email form) is
// rejected before any store work.
func (h *Handler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if req.Username == "" {
		httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, "username is required"))
		return
	}

	hasEmailForm := req.Email != "" && req.Password != ""
	hasGoogleForm := req.GoogleToken != ""

	if !hasEmailForm && !hasGoogleForm {
		if req.Email != "" || req.Password != "" {
			httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, "email and password must be supplied together"))
			return
		}
		httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, "either email and password or a google token is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		user models.User
		err  error
	)
	if hasEmailForm {
		user, err = h.Users.CreateWithPassword(ctx, req.Username, req.Email, req.Password)
	} else {
		user, err = h.Users.CreateWithGoogle(ctx, req.Username, req.GoogleToken)
	}
	switch err {
	case nil:
	case userstore.ErrDuplicateEmail:
		httpjson.Error(w, h.Log, apperrors.Wrap(apperrors.CodeConflict, "email already registered", err))
		return
	case userstore.ErrDuplicateGoogleID:
		httpjson.Error(w, h.Log, apperrors.Wrap(apperrors.CodeConflict, "google account already registered", err))
		return
	default:
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, createUserResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
	})
}

// HandleLinkGoogle handles POST /users/link-google. It attaches a Google
// token to an existing account so the user can sign in either way.
func (h *Handler) HandleLinkGoogle(w http.ResponseWriter, r *http.Request) {
	var req linkGoogleRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if req.GoogleToken == "" {
		httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, "google_token is required"))
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, "user_id is not a valid id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch err := h.Users.LinkGoogle(ctx, userID, req.GoogleToken); err {
	case nil:
	case userstore.ErrDuplicateGoogleID:
		httpjson.Error(w, h.Log, apperrors.Wrap(apperrors.CodeConflict, "google account already linked to another user", err))
		return
	case mongo.ErrNoDocuments:
		httpjson.Error(w, h.Log, apperrors.Wrap(apperrors.CodeNotFound, "user not found", err))
		return
	default:
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, linkGoogleResponse{Linked: true})
}
