// internal/domain/models/product.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is barcode-keyed reference data shared by all families. Products
// are append-only: never updated, never deleted. Barcode is globally unique.
type Product struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Barcode string             `bson:"barcode" json:"barcode"`
	Name    string             `bson:"name" json:"name"`
	Brand   string             `bson:"brand,omitempty" json:"brand,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
