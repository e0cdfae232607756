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

type ShiftHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	assignmentService shift.AssignmentService
}

func NewShiftHandler(assignmentService shift.AssignmentService) ShiftHandler {
	return &shiftHandlerImpl{
		assignmentService: assignmentService,
	}
}

// Assign implements ShiftHandler.
func (h *shiftHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req shift.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode assign shift request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	actorID, ok := claims["user_id"].(string)
	if !ok || actorID == "" {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	result, err := h.assignmentService.Assign(r.Context(), req, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assigned", result)
}

// Validate implements ShiftHandler.
func (h *shiftHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	var req shift.ValidateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode validate assignment request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assignmentService.Validate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements ShiftHandler.
func (h *shiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "shiftID")
	if !validator.IsValidUUID(shiftID) {
		response.BadRequest(w, "shiftID must be a valid UUID", nil)
		return
	}

	result, err := h.assignmentService.Get(r.Context(), shiftID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
