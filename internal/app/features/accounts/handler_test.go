package accounts_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/pantryhub/internal/app/features/accounts"
	userstore "github.com/dalemusser/pantryhub/internal/app/store/users"
	"github.com/dalemusser/pantryhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*accounts.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return accounts.NewHandler(userstore.New(db), zap.NewNop()), testutil.NewFixtures(t, db)
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandleCreateUser_WithPassword(t *testing.T) {
	h, _ := newHandler(t)

	rec := postJSON(t, h.HandleCreateUser,
		`{"username":"Alice","email":"alice@example.com","password":"s3cret"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Username != "Alice" {
		t.Errorf("username: got %q, want %q", resp.Username, "Alice")
	}
	if _, err := primitive.ObjectIDFromHex(resp.ID); err != nil {
		t.Errorf("id %q is not a valid object id", resp.ID)
	}
}

func TestHandleCreateUser_WithGoogleToken(t *testing.T) {
	h, _ := newHandler(t)

	rec := postJSON(t, h.HandleCreateUser,
		`{"username":"Bob","google_token":"google-token-1"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleCreateUser_Invalid(t *testing.T) {
	h, _ := newHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"no credentials", `{"username":"Carol"}`},
		{"email without password", `{"username":"Carol","email":"carol@example.com"}`},
		{"password without email", `{"username":"Carol","password":"s3cret"}`},
		{"missing username", `{"email":"carol@example.com","password":"s3cret"}`},
		{"malformed body", `{"username":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.HandleCreateUser, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleCreateUser_DuplicateEmail(t *testing.T) {
	h, _ := newHandler(t)

	body := `{"username":"Alice","email":"alice@example.com","password":"s3cret"}`
	if rec := postJSON(t, h.HandleCreateUser, body); rec.Code != http.StatusCreated {
		t.Fatalf("setup create failed: %d", rec.Code)
	}

	rec := postJSON(t, h.HandleCreateUser, body)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Error != "conflict" {
		t.Errorf("error code: got %q, want %q", resp.Error, "conflict")
	}
}

func TestHandleLinkGoogle(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@example.com", "s3cret")

	rec := postJSON(t, h.HandleLinkGoogle,
		`{"user_id":"`+user.ID.Hex()+`","google_token":"google-link-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Linked bool `json:"linked"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !resp.Linked {
		t.Error("expected linked:true")
	}
}

func TestHandleLinkGoogle_Failures(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateGoogleUser(ctx, "Holder", "google-held")
	user := fixtures.CreateUser(ctx, "Alice", "alice@example.com", "s3cret")

	tests := []struct {
		name string
		body string
		want int
	}{
		{"token held by another user", `{"user_id":"` + user.ID.Hex() + `","google_token":"google-held"}`, http.StatusConflict},
		{"unknown user", `{"user_id":"` + primitive.NewObjectID().Hex() + `","google_token":"google-fresh"}`, http.StatusNotFound},
		{"bad user id", `{"user_id":"not-hex","google_token":"google-fresh"}`, http.StatusBadRequest},
		{"missing token", `{"user_id":"` + user.ID.Hex() + `"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.HandleLinkGoogle, tt.body)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}
