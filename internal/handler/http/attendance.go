package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/shift"
	"github.com/vigilo-ops/vigilo-backend-go/internal/handler/http/response"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	AuditAction(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService shift.AttendanceService
}

func NewAttendanceHandler(attendanceService shift.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// AuditAction implements AttendanceHandler. The acting employee comes from the
// JWT, never from the request body; a guard can only audit their own shift.
func (h *attendanceHandlerImpl) AuditAction(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "shiftID")
	if !validator.IsValidUUID(shiftID) {
		response.BadRequest(w, "shiftID must be a valid UUID", nil)
		return
	}

	var req shift.AuditActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode audit action request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	result, err := h.attendanceService.AuditAction(r.Context(), shiftID, req, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
