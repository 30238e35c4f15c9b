package models

import "time"

// ProfileModel is the server-authoritative user record: age band, coin
// balance and cosmetic inventory. Coins only move through atomic $inc updates
// guarded by balance predicates.
type ProfileModel struct {
	ID           string        `bson:"_id"          json:"userId"` // UUID assigned at registration
	AgeRange     string        `bson:"ageRange"     json:"ageRange"`
	Coins        int           `bson:"coins"        json:"coins"`
	Level        int           `bson:"level"        json:"level"`
	Equipped     EquippedItems `bson:"equipped"     json:"equipped"`
	OwnedItemIDs []string      `bson:"ownedItemIds" json:"ownedItemIds"`
	CreatedAt    time.Time     `bson:"createdAt"    json:"created"`
	UpdatedAt    time.Time     `bson:"updatedAt"    json:"modified"`
}

// EquippedItems tracks which owned cosmetics are currently worn.
type EquippedItems struct {
	HatID        string `bson:"hatId,omitempty"        json:"hatId,omitempty"`
	BackgroundID string `bson:"backgroundId,omitempty" json:"backgroundId,omitempty"`
	AccessoryID  string `bson:"accessoryId,omitempty"  json:"accessoryId,omitempty"`
}

func (ProfileModel) CollectionName() string { return "users" }
