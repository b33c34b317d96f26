// internal/app/store/families/familystore.go
package familystore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/pantryhub/internal/app/policy/familypolicy"
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
	return &Store{c: db.Collection("families")}
}

var (
	// ErrDuplicateName is returned when the owner already has a family with
	// this name.
	ErrDuplicateName = errors.New("a family with this name already exists for this user")
	// ErrNotShareCapable is returned when the caller's login method may not
	// create families.
	ErrNotShareCapable = errors.New("login method is not permitted to create a family")
	// ErrBadType is returned for a family type outside the known set.
	ErrBadType = errors.New(`family type must be "home" or "office"`)
	// ErrAlreadyMember is returned when appending a user who is already in
	// the member list.
	ErrAlreadyMember = errors.New("user is already a member of this family")
)

// Create persists a new family whose sole member is the owner with role
// "owner".
//
// The sharing-capability policy is evaluated before anything touches the
// database, so a non-capable caller gets ErrNotShareCapable regardless of
// whether the name is taken. The (owner_id, name) unique index is the
// duplicate guard; the pre-check only improves the error in the common case.
func (s *Store) Create(ctx context.Context, ownerID primitive.ObjectID, name string, ftype models.FamilyType, method models.LoginMethod) (models.Family, error) {
	if !familypolicy.CanShareFamily(method) {
		return models.Family{}, ErrNotShareCapable
	}
	if !ftype.Valid() {
		return models.Family{}, ErrBadType
	}

	name = htmlsanitize.Text(normalize.Name(name))

	if err := s.c.FindOne(ctx, bson.M{"owner_id": ownerID, "name": name}).Err(); err == nil {
		return models.Family{}, ErrDuplicateName
	} else if err != mongo.ErrNoDocuments {
		return models.Family{}, err
	}

	f := models.Family{
		ID:      primitive.NewObjectID(),
		Name:    name,
		Type:    ftype,
		OwnerID: ownerID,
		Members: []models.FamilyMember{
			{UserID: ownerID, Role: models.RoleOwner},
		},
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, f); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Family{}, ErrDuplicateName
		}
		return models.Family{}, err
	}
	return f, nil
}

// GetByID loads a family by ObjectID. Returns mongo.ErrNoDocuments if
// absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Family, error) {
	var f models.Family
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		return models.Family{}, err
	}
	return f, nil
}

// IsMember reports whether the family exists and has a member entry for the
// user. Role is irrelevant to the membership test.
func (s *Store) IsMember(ctx context.Context, familyID, userID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"_id": familyID, "members.user_id": userID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// AddMember appends a user to the family's member list. The $ne guard on
// the filter makes the append idempotent-safe: a user already in the list
// matches no document and we report ErrAlreadyMember rather than pushing a
// second entry.
func (s *Store) AddMember(ctx context.Context, familyID, userID primitive.ObjectID, role models.MemberRole) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": familyID, "members.user_id": bson.M{"$ne": userID}},
		bson.M{"$push": bson.M{"members": models.FamilyMember{UserID: userID, Role: role}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the family is missing or the user is already a member.
		if err := s.c.FindOne(ctx, bson.M{"_id": familyID}).Err(); err != nil {
			return err
		}
		return ErrAlreadyMember
	}
	return nil
}
