// Package storage defines the Storage interface — a contract that any
// database backend must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// Handlers (HTTP layer) should not know or care which database they are
// talking to. By depending only on this interface:
//
//   - Switching databases = implement the interface for the new DB,
//     change one line in main.go. Zero handler changes.
//
//   - Writing tests = pass a fake/mock that satisfies the interface.
//     No real database needed for unit tests.
//
// This is the Dependency Inversion Principle in practice.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/employees-api/internal/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors returned by Storage implementations.
// Handlers match them with errors.Is to pick the right HTTP status,
// so implementations must wrap (%w) rather than reword them.
var (
	// ErrEmployeeNotFound means no document matched the lookup.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDuplicateEmail means an insert hit the unique index on email.
	// This is the authoritative uniqueness check — the handler's
	// find-by-email pre-check is racy and can miss a concurrent create.
	ErrDuplicateEmail = errors.New("employee with this email already exists")
)

// Storage is the database contract.
// Any concrete type that implements ALL of these methods automatically
// satisfies this interface — Go does this implicitly (no "implements"
// keyword required).
//
// Every method takes a context.Context so callers can carry the request
// deadline/cancellation down to the database driver.
type Storage interface {
	// CreateEmployee inserts a new employee document and returns the
	// store-assigned identifier. The implementation sets createdAt and
	// updatedAt. Returns ErrDuplicateEmail if the unique email index
	// rejects the insert.
	CreateEmployee(ctx context.Context, emp types.Employee) (primitive.ObjectID, error)

	// GetEmployeeByEmail fetches a single employee by email address.
	// Returns ErrEmployeeNotFound if no document matches.
	GetEmployeeByEmail(ctx context.Context, email string) (types.Employee, error)

	// GetEmployeeByID fetches the full document for one employee.
	// Returns ErrEmployeeNotFound if no document matches.
	GetEmployeeByID(ctx context.Context, id primitive.ObjectID) (types.Employee, error)

	// GetEmployees returns every employee ordered by creation time,
	// newest first. Returns an empty slice (not nil) when there are none.
	GetEmployees(ctx context.Context) ([]types.Employee, error)

	// UpdateEmployeeByID overwrites name, email, position and phone of
	// an existing document and refreshes updatedAt. It never touches
	// age, createdAt or the identifier. Returns the number of documents
	// actually modified (0 or 1).
	UpdateEmployeeByID(ctx context.Context, id primitive.ObjectID, emp types.Employee) (int64, error)

	// DeleteEmployeeByID removes one employee document permanently and
	// returns the number of documents deleted (0 or 1).
	DeleteEmployeeByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}
