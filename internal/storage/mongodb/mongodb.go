// Package mongodb provides a MongoDB-backed implementation of the
// storage.Storage interface using the official Go driver.
//
// WHY MongoDB?
// ────────────
// The employee record is a single self-contained document with no
// relations, so a document store is a natural fit. Uniqueness of the
// email field is enforced where it actually can be — by a unique index
// on the collection — rather than only by application code.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aanand-mishra/employees-api/internal/config"
	"github.com/aanand-mishra/employees-api/internal/storage"
	"github.com/aanand-mishra/employees-api/internal/types"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// collectionName is the Mongo collection holding all employee documents.
const collectionName = "employees"

// connectTimeout bounds the initial connect + ping + index creation.
// Only bootstrap is bounded here; per-request calls use the request
// context passed into each method.
const connectTimeout = 10 * time.Second

// MongoDB is the concrete implementation of storage.Storage.
// A single *mongo.Client maintains an internal connection pool and is
// safe for concurrent use by multiple goroutines.
type MongoDB struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// New connects to the MongoDB instance named by cfg.MongoURI, verifies
// the connection with a ping, and ensures the unique index on email.
//
// Naming convention: New() acts as a constructor. If it returns an
// error the caller (main) treats it as fatal — the service cannot run
// without its store.
func New(cfg *config.Config) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongodb.New: connect: %w", err)
	}

	// Connect alone does not guarantee a reachable server; Ping does.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongodb.New: ping: %w", err)
	}

	coll := client.Database(cfg.Database).Collection(collectionName)

	// CreateOne is idempotent for an identical index spec — safe to run
	// on every startup, like CREATE TABLE IF NOT EXISTS.
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("mongodb.New: create email index: %w", err)
	}

	return &MongoDB{client: client, coll: coll}, nil
}

// Close disconnects the client. Called once at shutdown by main.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// CreateEmployee inserts a new document, assigning the identifier and
// both timestamps here so no caller can forget them.
func (m *MongoDB) CreateEmployee(ctx context.Context, emp types.Employee) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	emp.ID = primitive.NewObjectID()
	emp.CreatedAt = &now
	emp.UpdatedAt = &now

	_, err := m.coll.InsertOne(ctx, emp)
	if err != nil {
		// The unique index on email surfaces a concurrent duplicate
		// create here, after the handler's pre-check already passed.
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, fmt.Errorf("CreateEmployee: %w", storage.ErrDuplicateEmail)
		}
		return primitive.NilObjectID, fmt.Errorf("CreateEmployee: insert: %w", err)
	}

	return emp.ID, nil
}

// GetEmployeeByEmail fetches a single document matched by email.
func (m *MongoDB) GetEmployeeByEmail(ctx context.Context, email string) (types.Employee, error) {
	var emp types.Employee

	err := m.coll.FindOne(ctx, bson.M{"email": email}).Decode(&emp)
	if err != nil {
		// ErrNoDocuments is the driver's sentinel for "nothing matched".
		// We translate it so handlers never import the mongo package.
		if err == mongo.ErrNoDocuments {
			return types.Employee{}, fmt.Errorf("GetEmployeeByEmail: %w", storage.ErrEmployeeNotFound)
		}
		return types.Employee{}, fmt.Errorf("GetEmployeeByEmail: find: %w", err)
	}

	return emp, nil
}

// GetEmployeeByID fetches the full document for one employee.
func (m *MongoDB) GetEmployeeByID(ctx context.Context, id primitive.ObjectID) (types.Employee, error) {
	var emp types.Employee

	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&emp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return types.Employee{}, fmt.Errorf("GetEmployeeByID: %w", storage.ErrEmployeeNotFound)
		}
		return types.Employee{}, fmt.Errorf("GetEmployeeByID: find: %w", err)
	}

	return emp, nil
}

// GetEmployees returns all employee documents, newest first.
func (m *MongoDB) GetEmployees(ctx context.Context) ([]types.Employee, error) {
	// Sort at the store so the ordering invariant holds no matter how
	// many callers list employees.
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := m.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("GetEmployees: find: %w", err)
	}
	defer cursor.Close(ctx)

	// Pre-allocate an empty (non-nil) slice.
	// Returning [] instead of null in JSON is better API behaviour.
	employees := make([]types.Employee, 0)
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("GetEmployees: decode: %w", err)
	}

	return employees, nil
}

// UpdateEmployeeByID overwrites the mutable fields of one document.
// The caller supplies the already-merged document; email arrives here
// carried over from the stored record, never from the API request.
func (m *MongoDB) UpdateEmployeeByID(ctx context.Context, id primitive.ObjectID, emp types.Employee) (int64, error) {
	res, err := m.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"name":      emp.Name,
			"email":     emp.Email,
			"position":  emp.Position,
			"phone":     emp.Phone,
			"updatedAt": time.Now().UTC(),
		},
	})
	if err != nil {
		return 0, fmt.Errorf("UpdateEmployeeByID: update: %w", err)
	}

	// updatedAt always changes, so ModifiedCount is 1 whenever the
	// document still exists — even for a value-identical request.
	return res.ModifiedCount, nil
}

// DeleteEmployeeByID removes one document permanently.
func (m *MongoDB) DeleteEmployeeByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("DeleteEmployeeByID: delete: %w", err)
	}

	return res.DeletedCount, nil
}
