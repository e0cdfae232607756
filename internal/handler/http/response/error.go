package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/employee"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/objective"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/shift"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Rule-violation conflicts
// carry their message verbatim so the scheduler sees which rule fired.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var conflict *shift.ConflictError
	if errors.As(err, &conflict) {
		Conflict(w, conflict.Msg)
		return
	}

	switch {
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, objective.ErrObjectiveNotFound):
		NotFound(w, "Objective not found")
	case errors.Is(err, shift.ErrNotShiftOwner):
		Forbidden(w, "Shift is assigned to another employee")
	case errors.Is(err, shift.ErrOutsideGeofence):
		Conflict(w, err.Error())
	case errors.Is(err, shift.ErrIllegalTransition):
		BadRequest(w, err.Error(), nil)

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
