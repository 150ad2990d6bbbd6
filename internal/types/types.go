// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and utils can all import types without depending
// on each other.
package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee represents one employee document in the store.
//
// Struct tags serve three purposes:
//
//  1. json:"..." — controls how the field appears when encoded to JSON.
//     Without the tag Go would use the exported field name, e.g. "Name".
//
//  2. bson:"..." — controls how the field is stored in MongoDB.
//     The identifier maps to Mongo's "_id"; "omitempty" on it lets us
//     insert documents whose ID the store has not assigned yet.
//
//  3. validate:"..." — rules checked by the go-playground/validator
//     package where a handler validates the whole struct.
//
// CreatedAt and UpdatedAt are pointers on purpose: response shaping
// copies an Employee and nils the timestamps it must not expose, and
// "omitempty" then drops them from the JSON entirely.
type Employee struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	Position  string             `json:"position" bson:"position" validate:"required"`
	Age       int                `json:"age,omitempty" bson:"age,omitempty"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt *time.Time         `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// CreateEmployeeRequest is the body accepted by POST /employees.
// Age and Phone are optional; presence of the other three is enforced
// by the required-fields middleware before the handler runs.
type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Position string `json:"position"`
	Age      int    `json:"age"`
	Phone    string `json:"phone"`
}

// UpdateEmployeeRequest is the body accepted by PATCH /employees/{id}.
// Every field is optional: an omitted (or empty-string) field keeps the
// value currently stored. Email is deliberately absent — it can never
// be changed through the API.
type UpdateEmployeeRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
}
