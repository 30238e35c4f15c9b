package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coinquest/core/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	startingCoins = 100
	startingLevel = 1
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrNotOwned          = errors.New("item not owned")
)

// Store persists user profiles. All coin movement goes through atomic
// single-document updates with balance predicates; there is no read-modify-
// write path for the wallet.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store { return &Store{db: db} }

func (s *Store) collection() *mongo.Collection {
	return s.db.Collection(models.ProfileModel{}.CollectionName())
}

// CreateProfile registers a new guest profile with the starting wallet.
func (s *Store) CreateProfile(ctx context.Context, ageRange string) (*models.ProfileModel, error) {
	now := time.Now().UTC()
	profile := models.ProfileModel{
		ID:           uuid.NewString(),
		AgeRange:     ageRange,
		Coins:        startingCoins,
		Level:        startingLevel,
		OwnedItemIDs: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.collection().InsertOne(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return &profile, nil
}

// GetProfile loads a profile by id.
func (s *Store) GetProfile(ctx context.Context, userID string) (*models.ProfileModel, error) {
	var profile models.ProfileModel
	err := s.collection().FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &profile, nil
}

// CreditCoins adds coins to the wallet atomically.
func (s *Store) CreditCoins(ctx context.Context, userID string, amount int) (*models.ProfileModel, error) {
	if amount < 0 {
		return nil, fmt.Errorf("negative credit %d", amount)
	}

	var profile models.ProfileModel
	err := s.collection().FindOneAndUpdate(
		ctx,
		bson.M{"_id": userID},
		bson.M{
			"$inc": bson.M{"coins": amount},
			"$set": bson.M{"updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("credit coins: %w", err)
	}
	return &profile, nil
}

// PurchaseItem decrements the balance and appends the item in one guarded
// update. The filter carries the balance and ownership predicates, so two
// concurrent purchases can never both succeed on the same coins.
func (s *Store) PurchaseItem(ctx context.Context, userID, itemID string, price int) (*models.ProfileModel, error) {
	var profile models.ProfileModel
	err := s.collection().FindOneAndUpdate(
		ctx,
		bson.M{
			"_id":          userID,
			"coins":        bson.M{"$gte": price},
			"ownedItemIds": bson.M{"$ne": itemID},
		},
		bson.M{
			"$inc":      bson.M{"coins": -price},
			"$addToSet": bson.M{"ownedItemIds": itemID},
			"$set":      bson.M{"updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&profile)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, s.classifyPurchaseFailure(ctx, userID, itemID, price)
	}
	if err != nil {
		return nil, fmt.Errorf("purchase item: %w", err)
	}
	return &profile, nil
}

// classifyPurchaseFailure turns a missed purchase predicate into the precise
// rejection reason.
func (s *Store) classifyPurchaseFailure(ctx context.Context, userID, itemID string, price int) error {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	for _, owned := range profile.OwnedItemIDs {
		if owned == itemID {
			return ErrAlreadyOwned
		}
	}
	if profile.Coins < price {
		return ErrInsufficientCoins
	}
	return fmt.Errorf("purchase rejected for user %s", userID)
}

// EquipItem sets an owned item into its slot. slotField is the bson path of
// the equipped slot ("equipped.hatId" etc).
func (s *Store) EquipItem(ctx context.Context, userID, itemID, slotField string) (*models.ProfileModel, error) {
	var profile models.ProfileModel
	err := s.collection().FindOneAndUpdate(
		ctx,
		bson.M{"_id": userID, "ownedItemIds": itemID},
		bson.M{"$set": bson.M{slotField: itemID, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&profile)

	if errors.Is(err, mongo.ErrNoDocuments) {
		if _, getErr := s.GetProfile(ctx, userID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrNotOwned
	}
	if err != nil {
		return nil, fmt.Errorf("equip item: %w", err)
	}
	return &profile, nil
}
