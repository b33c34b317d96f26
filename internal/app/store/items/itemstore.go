// internal/app/store/items/itemstore.go
package itemstore

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
	c        *mongo.Collection
	families *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:        db.Collection("items"),
		families: db.Collection("families"),
	}
}

var (
	// ErrNotFamilyMember is returned when the creating user does not belong
	// to the target family.
	ErrNotFamilyMember = errors.New("user is not a member of this family")
	// ErrDuplicateName is returned when the family already has an item with
	// this name.
	ErrDuplicateName = errors.New("an item with this name already exists in this family")
)

// NewItem carries the caller-supplied fields for Add.
type NewItem struct {
	FamilyID       primitive.ObjectID
	CreatedBy      primitive.ObjectID
	Name           string
	Barcode        string
	ExpirationDate time.Time // calendar date, treated as UTC midnight
	NotifyEnabled  bool
	NotifyDays     int
	Storage        string
	Photo          string
}

// NotifyDate derives the reminder date: the expiration date minus beforeDays
// calendar days. beforeDays may be zero or negative; a negative value yields
// a date after expiration, which this layer does not reject.
func NotifyDate(expiration time.Time, beforeDays int) time.Time {
	return expiration.AddDate(0, 0, -beforeDays)
}

// Add inserts a new inventory item.
//
// The membership check runs strictly before the name-uniqueness check: a
// non-member always gets ErrNotFamilyMember, never ErrDuplicateName, so
// outsiders cannot learn whether a name exists in a family they don't
// belong to. The (family_id, name) unique index is the duplicate guard
// under concurrency; the pre-check just picks the friendly error.
func (s *Store) Add(ctx context.Context, in NewItem) (models.Item, error) {
	err := s.families.FindOne(ctx, bson.M{
		"_id":             in.FamilyID,
		"members.user_id": in.CreatedBy,
	}).Err()
	if err == mongo.ErrNoDocuments {
		return models.Item{}, ErrNotFamilyMember
	}
	if err != nil {
		return models.Item{}, err
	}

	name := htmlsanitize.Text(normalize.Name(in.Name))

	if err := s.c.FindOne(ctx, bson.M{"family_id": in.FamilyID, "name": name}).Err(); err == nil {
		return models.Item{}, ErrDuplicateName
	} else if err != mongo.ErrNoDocuments {
		return models.Item{}, err
	}

	notify := models.NotifySettings{
		Enabled:    in.NotifyEnabled,
		BeforeDays: in.NotifyDays,
	}
	if in.NotifyEnabled {
		d := NotifyDate(in.ExpirationDate, in.NotifyDays)
		notify.NotifyDate = &d
	}

	item := models.Item{
		ID:             primitive.NewObjectID(),
		FamilyID:       in.FamilyID,
		Name:           name,
		Barcode:        normalize.Barcode(in.Barcode),
		ExpirationDate: in.ExpirationDate,
		Notify:         notify,
		CreatedBy:      in.CreatedBy,
		DeletedBy:      nil,
		Storage:        htmlsanitize.Text(normalize.Name(in.Storage)),
		Photo:          in.Photo,
		CreatedAt:      time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, item); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Item{}, ErrDuplicateName
		}
		return models.Item{}, err
	}
	return item, nil
}

// FindByBarcode returns the item in the family carrying the barcode.
// Returns mongo.ErrNoDocuments when the family has no such item; callers
// treat that as a normal "not found" result, not a failure.
func (s *Store) FindByBarcode(ctx context.Context, familyID primitive.ObjectID, barcode string) (models.Item, error) {
	var it models.Item
	err := s.c.FindOne(ctx, bson.M{
		"family_id": familyID,
		"barcode":   normalize.Barcode(barcode),
	}).Decode(&it)
	if err != nil {
		return models.Item{}, err
	}
	return it, nil
}
