// internal/domain/models/family.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FamilyMember links a user to a family with a role. Membership is embedded
// on the family document; the members.user_id index covers the lookup.
type FamilyMember struct {
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
	Role   MemberRole         `bson:"role" json:"role"`
}

// Family is a shared group that owns a collection of inventory items.
//
// Invariants:
//   - (owner_id, name) is unique across all families, enforced by a compound
//     unique index.
//   - The owner always appears in Members with role "owner" at creation.
type Family struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Type    FamilyType         `bson:"type" json:"type"`
	OwnerID primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	Members []FamilyMember     `bson:"members" json:"members"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
