package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/pantryhub/internal/app/system/authutil"
	"github.com/dalemusser/pantryhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data directly in the
// database, bypassing the stores under test.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates an email/password test user.
func (f *Fixtures) CreateUser(ctx context.Context, username, email, password string) models.User {
	f.t.Helper()

	hash, err := authutil.HashPassword(password)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}
	user := models.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		Email:        &email,
		PasswordHash: &hash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateGoogleUser creates a test user backed by a Google identity.
func (f *Fixtures) CreateGoogleUser(ctx context.Context, username, googleID string) models.User {
	f.t.Helper()

	user := models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		GoogleID:  &googleID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test google user: %v", err)
	}
	return user
}

// CreateFamily creates a test family owned by ownerID, with the owner as
// sole member.
func (f *Fixtures) CreateFamily(ctx context.Context, name string, ownerID primitive.ObjectID) models.Family {
	f.t.Helper()

	family := models.Family{
		ID:      primitive.NewObjectID(),
		Name:    name,
		Type:    models.FamilyTypeHome,
		OwnerID: ownerID,
		Members: []models.FamilyMember{
			{UserID: ownerID, Role: models.RoleOwner},
		},
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("families").InsertOne(ctx, family); err != nil {
		f.t.Fatalf("failed to create test family: %v", err)
	}
	return family
}

// CreateItem creates a test item in the given family.
func (f *Fixtures) CreateItem(ctx context.Context, familyID, createdBy primitive.ObjectID, name, barcode string) models.Item {
	f.t.Helper()

	item := models.Item{
		ID:             primitive.NewObjectID(),
		FamilyID:       familyID,
		Name:           name,
		Barcode:        barcode,
		ExpirationDate: time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC),
		Notify:         models.NotifySettings{Enabled: false, BeforeDays: 0},
		CreatedBy:      createdBy,
		Storage:        "Pantry",
		CreatedAt:      time.Now().UTC(),
	}
	if _, err := f.db.Collection("items").InsertOne(ctx, item); err != nil {
		f.t.Fatalf("failed to create test item: %v", err)
	}
	return item
}

// CreateProduct creates a test product for the barcode.
func (f *Fixtures) CreateProduct(ctx context.Context, barcode, name, brand string) models.Product {
	f.t.Helper()

	product := models.Product{
		ID:        primitive.NewObjectID(),
		Barcode:   barcode,
		Name:      name,
		Brand:     brand,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("products").InsertOne(ctx, product); err != nil {
		f.t.Fatalf("failed to create test product: %v", err)
	}
	return product
}
