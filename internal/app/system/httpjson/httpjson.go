// Package httpjson holds the JSON request/response plumbing shared by all
// feature handlers.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/pantryhub/internal/app/system/apperrors"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies. Nothing in this API legitimately sends
// more than a few KB.
const maxBodyBytes = 1 << 20

// Decode parses the request body into dst. A failure is a caller error.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalid, "invalid request body", err)
	}
	return nil
}

// Respond writes v as JSON with the given status.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Error writes err as a JSON error response. Taxonomy errors keep their code
// and message; anything else becomes an opaque 500 and is logged.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	var ae *apperrors.Error
	if errors.As(err, &ae) {
		Respond(w, apperrors.HTTPStatus(ae.Code), errorBody{
			Error:   string(ae.Code),
			Message: ae.Message,
		})
		return
	}
	if log != nil {
		log.Error("unhandled error", zap.Error(err))
	}
	Respond(w, http.StatusInternalServerError, errorBody{
		Error:   "internal",
		Message: "internal server error",
	})
}
