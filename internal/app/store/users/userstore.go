// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/pantryhub/internal/app/system/authutil"
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
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrDuplicateGoogleID is returned when another user already holds the
	// Google identity.
	ErrDuplicateGoogleID = errors.New("this google account is already linked to a user")
	// ErrNotAuthorized covers every password-login failure: unknown email,
	// account without a password credential, or wrong password. One error
	// for all three so callers cannot probe which emails are registered.
	ErrNotAuthorized = errors.New("invalid email or password")
)

// CreateWithPassword inserts a new email/password account. The password is
// stored only as a bcrypt hash. The sparse unique index on users.email is
// the real duplicate guard; the pre-check just produces the friendly error
// in the common case.
func (s *Store) CreateWithPassword(ctx context.Context, username, email, password string) (models.User, error) {
	email = normalize.Email(email)

	if err := s.c.FindOne(ctx, bson.M{"email": email}).Err(); err == nil {
		return models.User{}, ErrDuplicateEmail
	} else if err != mongo.ErrNoDocuments {
		return models.User{}, err
	}

	hash, err := authutil.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:           primitive.NewObjectID(),
		Username:     htmlsanitize.Text(normalize.Name(username)),
		Email:        &email,
		PasswordHash: &hash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// CreateWithGoogle inserts a new account backed by a Google identity. No
// local password credential exists for such accounts.
func (s *Store) CreateWithGoogle(ctx context.Context, username, googleID string) (models.User, error) {
	if err := s.c.FindOne(ctx, bson.M{"google_id": googleID}).Err(); err == nil {
		return models.User{}, ErrDuplicateGoogleID
	} else if err != mongo.ErrNoDocuments {
		return models.User{}, err
	}

	u := models.User{
		ID:        primitive.NewObjectID(),
		Username:  htmlsanitize.Text(normalize.Name(username)),
		GoogleID:  &googleID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateGoogleID
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID loads a user by ObjectID. Returns mongo.ErrNoDocuments if absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// AuthenticateByPassword verifies an email/password pair and returns the
// user. Every failure path returns ErrNotAuthorized.
func (s *Store) AuthenticateByPassword(ctx context.Context, email, password string) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotAuthorized
	}
	if err != nil {
		return models.User{}, err
	}
	if u.PasswordHash == nil || !authutil.CheckPassword(*u.PasswordHash, password) {
		return models.User{}, ErrNotAuthorized
	}
	return u, nil
}

// AuthenticateByGoogle returns the user holding the Google identity.
// Returns mongo.ErrNoDocuments if no user holds it.
func (s *Store) AuthenticateByGoogle(ctx context.Context, googleID string) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"google_id": googleID}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// LinkGoogle attaches a Google identity to an existing user. Returns
// ErrDuplicateGoogleID if any user (including the target) already holds the
// identity, or mongo.ErrNoDocuments if the user does not exist. The sparse
// unique index backs the pre-check against concurrent links.
func (s *Store) LinkGoogle(ctx context.Context, userID primitive.ObjectID, googleID string) error {
	if err := s.c.FindOne(ctx, bson.M{"google_id": googleID}).Err(); err == nil {
		return ErrDuplicateGoogleID
	} else if err != mongo.ErrNoDocuments {
		return err
	}

	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"google_id": googleID}},
	)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateGoogleID
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
