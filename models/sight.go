package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Sighting is a single species observation submitted by a contributor.
// Observer is the username taken from the access token, not from the
// payload.
type Sighting struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt int64         `json:"-" bson:"created_at"`

	Species      string  `json:"species" bson:"species"`
	Count        int     `json:"count" bson:"count"`
	Date         string  `json:"date" bson:"date"`
	Latitude     float64 `json:"latitude" bson:"latitude"`
	Longitude    float64 `json:"longitude" bson:"longitude"`
	Municipality string  `json:"municipality,omitempty" bson:"municipality,omitempty"`
	Comment      string  `json:"comment,omitempty" bson:"comment,omitempty"`
	Observer     string  `json:"observer" bson:"observer"`
}
