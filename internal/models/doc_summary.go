package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocSummaryModel is the persisted unit of the document pipeline. Records are
// append-only: created once per successful ingest/explain, never mutated.
// SafeSummary is the only document-derived text that is ever stored.
type DocSummaryModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId"        json:"userId"`
	DocType     string             `bson:"docType"       json:"docType"`
	SafeSummary string             `bson:"safeSummary"   json:"safeSummary"`
	Embedding   []float64          `bson:"embedding"     json:"-"`
	Tags        []string           `bson:"tags"          json:"tags"`
	CreatedAt   time.Time          `bson:"createdAt"     json:"created"`
}

func (DocSummaryModel) CollectionName() string { return "docchunks" }
