// internal/app/store/products/productstore.go
package productstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/pantryhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/pantryhub/internal/app/system/normalize"
	"github.com/dalemusser/pantryhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("products")}
}

// ErrDuplicateBarcode is returned when the barcode is already registered.
var ErrDuplicateBarcode = errors.New("a product with this barcode already exists")

// Create registers product metadata for a barcode. Products are append-only
// reference data; there is no update or delete. The unique index on barcode
// is the duplicate guard.
func (s *Store) Create(ctx context.Context, barcode, name, brand string) (models.Product, error) {
	barcode = normalize.Barcode(barcode)

	if err := s.c.FindOne(ctx, bson.M{"barcode": barcode}).Err(); err == nil {
		return models.Product{}, ErrDuplicateBarcode
	} else if err != mongo.ErrNoDocuments {
		return models.Product{}, err
	}

	p := models.Product{
		ID:        primitive.NewObjectID(),
		Barcode:   barcode,
		Name:      htmlsanitize.Text(normalize.Name(name)),
		Brand:     htmlsanitize.Text(normalize.Name(brand)),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Product{}, ErrDuplicateBarcode
		}
		return models.Product{}, err
	}
	return p, nil
}

// GetByBarcode returns the product registered for the barcode. Returns
// mongo.ErrNoDocuments when none exists; a missing product is a normal,
// representable outcome for callers.
func (s *Store) GetByBarcode(ctx context.Context, barcode string) (models.Product, error) {
	var p models.Product
	if err := s.c.FindOne(ctx, bson.M{"barcode": normalize.Barcode(barcode)}).Decode(&p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}
