package httpjson_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/pantryhub/internal/app/system/apperrors"
	"github.com/dalemusser/pantryhub/internal/app/system/httpjson"
	"go.uber.org/zap"
)

func TestDecode_Valid(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Milk"}`))
	rec := httptest.NewRecorder()

	var body struct {
		Name string `json:"name"`
	}
	if err := httpjson.Decode(rec, req, &body); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if body.Name != "Milk" {
		t.Errorf("name: got %q, want %q", body.Name, "Milk")
	}
}

func TestDecode_Malformed(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	var body struct{}
	err := httpjson.Decode(rec, req, &body)
	code, ok := apperrors.CodeOf(err)
	if !ok || code != apperrors.CodeInvalid {
		t.Errorf("expected invalid code, got %v", err)
	}
}

func TestError_TaxonomyError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.Error(rec, zap.NewNop(), apperrors.New(apperrors.CodeConflict, "item name already exists in family"))

	if rec.Code != http.StatusConflict {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusConflict)
	}
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Error != "conflict" {
		t.Errorf("error: got %q, want %q", body.Error, "conflict")
	}
	if body.Message != "item name already exists in family" {
		t.Errorf("message: got %q", body.Message)
	}
}

func TestError_UnknownError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.Error(rec, zap.NewNop(), errors.New("mongo blew up"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	// Internal details must not leak to the caller.
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Errorf("response leaked internal error: %s", rec.Body.String())
	}
}
