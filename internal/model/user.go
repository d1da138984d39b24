package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a registered user account
type User struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"` // bcrypt hash, never serialized
	OS       string             `json:"os,omitempty" bson:"os,omitempty"`
}
