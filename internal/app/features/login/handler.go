// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"

	loginstore "github.com/dalemusser/pantryhub/internal/app/store/logins"
	userstore "github.com/dalemusser/pantryhub/internal/app/store/users"
	"github.com/dalemusser/pantryhub/internal/app/system/apperrors"
	"github.com/dalemusser/pantryhub/internal/app/system/httpjson"
	"github.com/dalemusser/pantryhub/internal/app/system/timeouts"
	"github.com/dalemusser/pantryhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler authenticates users by either credential form.
type Handler struct {
	Users *userstore.Store
	// Logins is optional; when set, every successful login is recorded.
	Logins *loginstore.Store
	Log    *zap.Logger
}

func NewHandler(users *userstore.Store, logins *loginstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Logins: logins, Log: logger}
}

type loginRequest struct {
	Email       string `json:"email,omitempty"`
	Password    string `json:"password,omitempty"`
	GoogleToken string `json:"google_token,omitempty"`
}

type loginResponse struct {
	UserID   string             `json:"user_id"`
	Username string             `json:"username"`
	Method   models.LoginMethod `json:"method"`
}

// HandleLogin handles POST /login.
//
// Password failures and unknown emails both come back as not_authorized so
// the endpoint cannot be used to discover which emails are registered. An
// unknown Google token is not_found: the client is expected to follow up
// with registration, so the distinction is useful there.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	hasEmailForm := req.Email != "" && req.Password != ""
	hasGoogleForm := req.GoogleToken != ""
	if !hasEmailForm && !hasGoogleForm {
		httpjson.Error(w, h.Log, apperrors.New(apperrors.CodeInvalid, "either email and password or a google token is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		user   models.User
		method models.LoginMethod
		err    error
	)
	if hasEmailForm {
		method = models.LoginMethodEmail
		user, err = h.Users.AuthenticateByPassword(ctx, req.Email, req.Password)
	} else {
		method = models.LoginMethodGoogle
		user, err = h.Users.AuthenticateByGoogle(ctx, req.GoogleToken)
	}
	switch err {
	case nil:
	case userstore.ErrNotAuthorized:
		httpjson.Error(w, h.Log, apperrors.Wrap(apperrors.CodeNotAuthorized, "invalid email or password", err))
		return
	case mongo.ErrNoDocuments:
		httpjson.Error(w, h.Log, apperrors.Wrap(apperrors.CodeNotFound, "no account for this google token", err))
		return
	default:
		httpjson.Error(w, h.Log, err)
		return
	}

	if h.Logins != nil {
		// History is best-effort; a failed insert never fails the login.
		if err := h.Logins.CreateFrom(ctx, r, user.ID, method); err != nil {
			h.Log.Warn("login history insert failed", zap.Error(err))
		}
	}

	httpjson.Respond(w, http.StatusOK, loginResponse{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Method:   method,
	})
}
