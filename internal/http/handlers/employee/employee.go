// Package employee contains all HTTP handlers related to the Employee
// resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like a database.
// To inject dependencies we use a factory function that:
//  1. Accepts dependencies (storage)
//  2. Returns a function with the exact signature the router needs
//
// Because the inner function "closes over" the outer parameters, it can
// access `storage` even after the factory call has returned:
//
//	router.HandleFunc("POST /api/employee/v1/employees", employee.New(storage))
//	//                                                   ^^^^^^^^^^^^^^^^^^^^^
//	//                              New(storage) is called ONCE at startup.
//	//                              It returns a handler func which is called
//	//                              on EVERY incoming request.
package employee

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/aanand-mishra/employees-api/internal/storage"
	"github.com/aanand-mishra/employees-api/internal/types"
	"github.com/aanand-mishra/employees-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mobileRegex matches Indian mobile numbers: an optional +91 or 0
// prefix followed by exactly ten digits.
var mobileRegex = regexp.MustCompile(`^(\+91|0)?[1-9][0-9]{9}$`)

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/employee/v1/employees
// Creates a new employee from the JSON request body. Presence of name,
// email and position has already been checked by middleware.RequireFields.
//
// Request body (JSON):
//
//	{ "name": "John Doe", "email": "john.doe@example.com",
//	  "position": "Software Engineer", "age": 30, "phone": "1234567890" }
//
// Success response (201 Created):
//
//	{ "status": true, "message": "employee added successfully", "data": null }
//
// Error responses:
//
//	409 Conflict — email fails format validation
//	400 Bad Request — bad phone format, or email already registered
//	500 Internal — store error
//
// The email uniqueness pre-check here is racy by nature: two concurrent
// creates can both pass it. The store's unique index is the real
// guarantee; its duplicate-key rejection is mapped to the same 400.
// ─────────────────────────────────────────────────────────────────────────────
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating an employee")

		var req types.CreateEmployeeRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil && !errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Failure("invalid request body", nil))
			return
		}

		// ── Step 1: email format, before anything touches the store ──
		if err := validator.New().Var(req.Email, "required,email"); err != nil {
			response.WriteJSON(w, http.StatusConflict,
				response.Failure("entered email is not valid", nil))
			return
		}

		// ── Step 2: phone format, only when a phone was supplied ─────
		if req.Phone != "" && !mobileRegex.MatchString(req.Phone) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Failure("phone number is not valid", nil))
			return
		}

		// ── Step 3: uniqueness pre-check ──────────────────────────────
		_, err = store.GetEmployeeByEmail(r.Context(), req.Email)
		if err == nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Failure("employee already exists", nil))
			return
		}
		if !errors.Is(err, storage.ErrEmployeeNotFound) {
			slog.Error("error checking employee email",
				slog.String("email", req.Email),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		// ── Step 4: insert ────────────────────────────────────────────
		id, err := store.CreateEmployee(r.Context(), types.Employee{
			Name:     req.Name,
			Email:    req.Email,
			Position: req.Position,
			Age:      req.Age,
			Phone:    req.Phone,
		})
		if err != nil {
			// Lost the race against a concurrent create with the same
			// email — the unique index caught what the pre-check missed.
			if errors.Is(err, storage.ErrDuplicateEmail) {
				response.WriteJSON(w, http.StatusBadRequest,
					response.Failure("employee already exists", nil))
				return
			}
			slog.Error("error creating employee", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("employee created", slog.String("id", id.Hex()))

		// The created record is deliberately not echoed back.
		response.WriteJSON(w, http.StatusCreated,
			response.Success("employee added successfully", nil))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/employee/v1/employees
// Returns every employee ordered by creation time, newest first, with
// updatedAt omitted from each record.
//
// Success response (201 — this API reports list success with 201):
//
//	{ "status": true, "message": "employee data fetched successfully",
//	  "data": [ { "_id": "...", "name": "...", ... }, ... ] }
//
// An empty result set is a failure in this API, not an empty success:
//
//	400 — { "status": false, "message": "no employees found", "data": [] }
// ─────────────────────────────────────────────────────────────────────────────
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all employees")

		employees, err := store.GetEmployees(r.Context())
		if err != nil {
			slog.Error("error getting employees", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Failure(err.Error(), make([]types.Employee, 0)))
			return
		}

		if len(employees) < 1 {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Failure("no employees found", make([]types.Employee, 0)))
			return
		}

		// Shape the records: keep createdAt (callers sort on it), hide
		// updatedAt. Nil pointers are dropped by omitempty.
		list := make([]types.Employee, 0, len(employees))
		for _, emp := range employees {
			emp.UpdatedAt = nil
			list = append(list, emp)
		}

		response.WriteJSON(w, http.StatusCreated,
			response.Success("employee data fetched successfully", list))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/employee/v1/employees/{id}
// Fetches a single employee by identifier.
//
// Three distinct failures, each separately reported:
//
//	404 — id missing from the path
//	400 — id is not a valid ObjectID (checked before any store lookup)
//	404 — no employee with that id
//
// Success response (200 OK) — timestamps excluded:
//
//	{ "status": true, "message": "employee data fetched successfully",
//	  "data": { "_id": "...", "name": "...", "email": "...", ... } }
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting an employee", slog.String("id", id))

		if id == "" {
			response.WriteJSON(w, http.StatusNotFound,
				response.Failure("employee id not found", nil))
			return
		}

		// Validate the identifier format up front so a malformed id is
		// a clean 400, not a store error dressed up as a 500.
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Failure("invalid employee id", nil))
			return
		}

		emp, err := store.GetEmployeeByID(r.Context(), objectID)
		if err != nil {
			if errors.Is(err, storage.ErrEmployeeNotFound) {
				response.WriteJSON(w, http.StatusNotFound,
					response.Failure("employee not found", nil))
				return
			}
			slog.Error("error getting employee",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		// Timestamps are not part of the single-record view.
		emp.CreatedAt = nil
		emp.UpdatedAt = nil

		response.WriteJSON(w, http.StatusOK,
			response.Success("employee data fetched successfully", emp))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PATCH /api/employee/v1/employees/{id}
// Merge-on-empty update of name, position and phone.
//
// Any field that is omitted or empty in the body keeps the currently
// stored value — an empty string is treated identically to an omitted
// field. Email and the identifier are always carried over from the
// stored record; the request cannot change them. Age is untouched.
//
// Error responses:
//
//	404 — id missing, or no employee with that id
//	400 — bad phone format, or malformed id
//	500 — store error, or the document vanished mid-update
// ─────────────────────────────────────────────────────────────────────────────
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating an employee", slog.String("id", id))

		if id == "" {
			response.WriteJSON(w, http.StatusNotFound,
				response.Failure("employee id not found", nil))
			return
		}

		// An absent body is a valid empty patch: every field falls back
		// to its stored value.
		var req types.UpdateEmployeeRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil && !errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Failure("invalid request body", nil))
			return
		}

		if req.Phone != "" && !mobileRegex.MatchString(req.Phone) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Failure("phone number is not valid", nil))
			return
		}

		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Failure("invalid employee id", nil))
			return
		}

		existing, err := store.GetEmployeeByID(r.Context(), objectID)
		if err != nil {
			if errors.Is(err, storage.ErrEmployeeNotFound) {
				response.WriteJSON(w, http.StatusNotFound,
					response.Failure("employee not found", nil))
				return
			}
			slog.Error("error getting employee",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		// Merge: empty request fields keep the stored values. Email is
		// never taken from the request.
		updated := existing
		if req.Name != "" {
			updated.Name = req.Name
		}
		if req.Position != "" {
			updated.Position = req.Position
		}
		if req.Phone != "" {
			updated.Phone = req.Phone
		}

		modified, err := store.UpdateEmployeeByID(r.Context(), objectID, updated)
		if err != nil {
			slog.Error("error updating employee",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		// updatedAt is refreshed on every write, so a modified count of
		// 1 is expected even for a value-identical request. Anything
		// else means the document was deleted between our existence
		// check and the write.
		if modified != 1 {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Failure("employee not updated", nil))
			return
		}

		slog.Info("employee updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK,
			response.Success("employee data updated successfully", nil))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /api/employee/v1/employees/{id}
// Hard delete — no soft-delete, no tombstone.
//
// Error responses:
//
//	404 — id missing, or no employee with that id
//	400 — malformed id (checked before any store lookup)
//	500 — store error, or the delete removed nothing
// ─────────────────────────────────────────────────────────────────────────────
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting an employee", slog.String("id", id))

		if id == "" {
			response.WriteJSON(w, http.StatusNotFound,
				response.Failure("employee id not found", nil))
			return
		}

		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Failure("invalid employee id", nil))
			return
		}

		if _, err := store.GetEmployeeByID(r.Context(), objectID); err != nil {
			if errors.Is(err, storage.ErrEmployeeNotFound) {
				response.WriteJSON(w, http.StatusNotFound,
					response.Failure("employee not found", nil))
				return
			}
			slog.Error("error getting employee",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		deleted, err := store.DeleteEmployeeByID(r.Context(), objectID)
		if err != nil {
			slog.Error("error deleting employee",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		// Success is only reported when exactly one document went away.
		if deleted != 1 {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Failure("employee not deleted", nil))
			return
		}

		slog.Info("employee deleted", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK,
			response.Success("employee deleted successfully", nil))
	}
}
