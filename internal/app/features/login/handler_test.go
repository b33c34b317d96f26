package login_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/pantryhub/internal/app/features/login"
	loginstore "github.com/dalemusser/pantryhub/internal/app/store/logins"
	userstore "github.com/dalemusser/pantryhub/internal/app/store/users"
	"github.com/dalemusser/pantryhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func postLogin(t *testing.T, h *login.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)
	return rec
}

func TestHandleLogin_WithPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	h := login.NewHandler(userstore.New(db), nil, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@example.com", "s3cret")

	rec := postLogin(t, h, `{"email":"alice@example.com","password":"s3cret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		UserID   string `json:"user_id"`
		Username string `json:"username"`
		Method   string `json:"method"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.UserID != user.ID.Hex() {
		t.Errorf("user_id: got %q, want %q", resp.UserID, user.ID.Hex())
	}
	if resp.Method != "email" {
		t.Errorf("method: got %q, want %q", resp.Method, "email")
	}
}

func TestHandleLogin_WithGoogleToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	h := login.NewHandler(userstore.New(db), nil, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateGoogleUser(ctx, "Bob", "google-login-1")

	rec := postLogin(t, h, `{"google_token":"google-login-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Method string `json:"method"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Method != "google" {
		t.Errorf("method: got %q, want %q", resp.Method, "google")
	}
}

func TestHandleLogin_Failures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	h := login.NewHandler(userstore.New(db), nil, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Alice", "alice@example.com", "s3cret")

	tests := []struct {
		name string
		body string
		want int
	}{
		// Unknown email and wrong password are indistinguishable on the wire.
		{"wrong password", `{"email":"alice@example.com","password":"wrong"}`, http.StatusUnauthorized},
		{"unknown email", `{"email":"nobody@example.com","password":"s3cret"}`, http.StatusUnauthorized},
		{"unknown google token", `{"google_token":"google-unknown"}`, http.StatusNotFound},
		{"no credentials", `{}`, http.StatusBadRequest},
		{"email without password", `{"email":"alice@example.com"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postLogin(t, h, tt.body)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleLogin_RecordsHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	h := login.NewHandler(userstore.New(db), loginstore.New(db), zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@example.com", "s3cret")

	rec := postLogin(t, h, `{"email":"alice@example.com","password":"s3cret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d: %s", rec.Code, rec.Body.String())
	}

	n, err := db.Collection("login_records").CountDocuments(ctx, bson.M{"user_id": user.ID})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 login record, got %d", n)
	}
}
