// internal/domain/models/item.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotifySettings controls the expiry reminder for an item. NotifyDate is
// derived once at creation (expiration date minus BeforeDays calendar days)
// and is nil when reminders are disabled. It is never recomputed.
type NotifySettings struct {
	Enabled    bool       `bson:"enabled" json:"enabled"`
	BeforeDays int        `bson:"before_days" json:"before_days"`
	NotifyDate *time.Time `bson:"notify_date,omitempty" json:"notify_date,omitempty"`
}

// Item is a perishable inventory entry scoped to a family.
//
// ExpirationDate is a plain calendar date stored as UTC midnight; no
// timezone arithmetic is applied to it.
//
// DeletedBy is a soft-delete marker. No operation sets it yet; the field is
// kept so existing documents stay valid once deletion lands.
type Item struct {
	ID             primitive.ObjectID  `bson:"_id" json:"id"`
	FamilyID       primitive.ObjectID  `bson:"family_id" json:"family_id"`
	Name           string              `bson:"name" json:"name"`
	Barcode        string              `bson:"barcode,omitempty" json:"barcode,omitempty"`
	ExpirationDate time.Time           `bson:"expiration_date" json:"expiration_date"`
	Notify         NotifySettings      `bson:"notify" json:"notify"`
	CreatedBy      primitive.ObjectID  `bson:"created_by" json:"created_by"`
	DeletedBy      *primitive.ObjectID `bson:"deleted_by,omitempty" json:"deleted_by,omitempty"`
	Storage        string              `bson:"storage,omitempty" json:"storage,omitempty"`
	Photo          string              `bson:"photo,omitempty" json:"photo,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
