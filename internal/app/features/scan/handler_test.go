package scan_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/pantryhub/internal/app/features/scan"
	itemstore "github.com/dalemusser/pantryhub/internal/app/store/items"
	productstore "github.com/dalemusser/pantryhub/internal/app/store/products"
	"github.com/dalemusser/pantryhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type scanResponse struct {
	Found        bool    `json:"found"`
	ItemName     string  `json:"item_name"`
	Storage      string  `json:"storage"`
	ProductName  *string `json:"product_name"`
	ProductBrand *string `json:"product_brand"`
}

func doScan(t *testing.T, h *scan.Handler, barcode string, familyID primitive.ObjectID) (int, scanResponse) {
	t.Helper()
	router := scan.Routes(h)
	req := httptest.NewRequest("GET", "/"+barcode+"?family_id="+familyID.Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp scanResponse
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
	}
	return rec.Code, resp
}

func TestHandleScan_ItemWithProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	h := scan.NewHandler(itemstore.New(db), productstore.New(db), zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateGoogleUser(ctx, "Owner", "google-scan-1")
	family := fixtures.CreateFamily(ctx, "Kitchen", owner.ID)
	fixtures.CreateItem(ctx, family.ID, owner.ID, "Milk", "012345678905")
	fixtures.CreateProduct(ctx, "012345678905", "Whole Milk", "Acme Dairy")

	code, resp := doScan(t, h, "012345678905", family.ID)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !resp.Found {
		t.Fatal("expected found:true")
	}
	if resp.ItemName != "Milk" {
		t.Errorf("item_name: got %q, want %q", resp.ItemName, "Milk")
	}
	if resp.ProductName == nil || *resp.ProductName != "Whole Milk" {
		t.Errorf("product_name: got %v, want %q", resp.ProductName, "Whole Milk")
	}
	if resp.ProductBrand == nil || *resp.ProductBrand != "Acme Dairy" {
		t.Errorf("product_brand: got %v, want %q", resp.ProductBrand, "Acme Dairy")
	}
}

func TestHandleScan_ItemWithoutProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	h := scan.NewHandler(itemstore.New(db), productstore.New(db), zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateGoogleUser(ctx, "Owner", "google-scan-2")
	family := fixtures.CreateFamily(ctx, "Kitchen", owner.ID)
	fixtures.CreateItem(ctx, family.ID, owner.ID, "Mystery Jar", "555000555000")

	code, resp := doScan(t, h, "555000555000", family.ID)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !resp.Found {
		t.Fatal("expected found:true")
	}
	if resp.ProductName != nil || resp.ProductBrand != nil {
		t.Errorf("expected null product fields, got name=%v brand=%v", resp.ProductName, resp.ProductBrand)
	}
}

func TestHandleScan_NoItemInFamily(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	h := scan.NewHandler(itemstore.New(db), productstore.New(db), zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateGoogleUser(ctx, "Owner", "google-scan-3")
	family := fixtures.CreateFamily(ctx, "Kitchen", owner.ID)
	// The product exists globally but no item in this family carries it.
	fixtures.CreateProduct(ctx, "012345678905", "Whole Milk", "Acme Dairy")

	code, resp := doScan(t, h, "012345678905", family.ID)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp.Found {
		t.Error("expected found:false when the family has no matching item")
	}
}

func TestHandleScan_BadFamilyID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := scan.NewHandler(itemstore.New(db), productstore.New(db), zap.NewNop())

	router := scan.Routes(h)
	req := httptest.NewRequest("GET", "/012345678905?family_id=not-hex", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
