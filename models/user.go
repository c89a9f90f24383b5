package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a registered contributor account. Password holds the bcrypt hash
// and is never serialized to clients.
type User struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt int64         `json:"-" bson:"created_at"`

	Username string `json:"username" bson:"username"`
	Email    string `json:"email" bson:"email"`
	Name     string `json:"name,omitempty" bson:"name,omitempty"`
	Surname  string `json:"surname,omitempty" bson:"surname,omitempty"`
	Password string `json:"-" bson:"password"`
}
