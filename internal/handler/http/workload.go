package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/shift"
	"github.com/vigilo-ops/vigilo-backend-go/internal/handler/http/response"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/timeutil"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/validator"
)

type WorkloadHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
}

type workloadHandlerImpl struct {
	workloadService   shift.WorkloadService
	assignmentService shift.AssignmentService
}

func NewWorkloadHandler(workloadService shift.WorkloadService, assignmentService shift.AssignmentService) WorkloadHandler {
	return &workloadHandlerImpl{
		workloadService:   workloadService,
		assignmentService: assignmentService,
	}
}

// Report implements WorkloadHandler.
func (h *workloadHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "employeeID is required", nil)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "month must be a number between 1 and 12", nil)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2200 {
		response.BadRequest(w, "year must be a valid year", nil)
		return
	}

	result, err := h.workloadService.Report(r.Context(), employeeID, time.Month(month), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListShifts implements WorkloadHandler.
func (h *workloadHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "employeeID is required", nil)
		return
	}

	from, ok := validator.IsValidDate(r.URL.Query().Get("from"))
	if !ok {
		response.BadRequest(w, "from must be a date in YYYY-MM-DD format", nil)
		return
	}
	to, ok := validator.IsValidDate(r.URL.Query().Get("to"))
	if !ok {
		response.BadRequest(w, "to must be a date in YYYY-MM-DD format", nil)
		return
	}
	if to.Before(from) {
		response.BadRequest(w, "to must not be before from", nil)
		return
	}

	result, err := h.assignmentService.ListByEmployee(r.Context(), employeeID, timeutil.StartOfDay(from), timeutil.EndOfDay(to))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
