// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account holder. A user authenticates either with an email and
// password or with a linked Google identity; every user has at least one of
// the two. Email and GoogleID are pointers so that absent values are omitted
// from the document entirely, which is what lets the sparse unique indexes
// on users.email and users.google_id do their job.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        *string            `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash *string            `bson:"password,omitempty" json:"-"`
	GoogleID     *string            `bson:"google_id,omitempty" json:"google_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// HasPasswordCredential reports whether the user can log in with
// email + password.
func (u User) HasPasswordCredential() bool {
	return u.Email != nil && u.PasswordHash != nil
}
