package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/objective"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/shift"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/database"
)

type AssignmentServiceImpl struct {
	txm           *database.TxManager
	shiftRepo     shift.ShiftRepository
	objectiveRepo objective.ObjectiveRepository
	workload      shift.WorkloadService
}

func NewAssignmentService(
	txm *database.TxManager,
	shiftRepo shift.ShiftRepository,
	objectiveRepo objective.ObjectiveRepository,
	workload shift.WorkloadService,
) shift.AssignmentService {
	return &AssignmentServiceImpl{
		txm:           txm,
		shiftRepo:     shiftRepo,
		objectiveRepo: objectiveRepo,
		workload:      workload,
	}
}

// Assign implements shift.AssignmentService. The labor-rule checks run before
// the transaction; the overlap check is repeated inside it against locked
// state so two schedulers racing on the same employee cannot both win.
func (s *AssignmentServiceImpl) Assign(ctx context.Context, req shift.AssignShiftRequest, actorID string) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if _, err := s.objectiveRepo.GetByID(ctx, req.ObjectiveID); err != nil {
		return shift.ShiftResponse{}, err
	}

	start := req.StartTime.Time
	end := req.EndTime.Time

	cls, err := s.workload.ValidateAssignment(ctx, req.EmployeeID, start, end, "")
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	var created shift.Shift
	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		conflicting, err := s.shiftRepo.ListOverlapping(ctx, req.EmployeeID, start, end)
		if err != nil {
			return fmt.Errorf("re-check overlapping shifts: %w", err)
		}
		if len(conflicting) > 0 {
			c := conflicting[0]
			return shift.NewConflictError(fmt.Sprintf(
				"employee already has a shift from %s to %s",
				c.StartTime.UTC().Format("2006-01-02 15:04"),
				c.EndTime.UTC().Format("2006-01-02 15:04"),
			))
		}

		now := time.Now()
		created, err = s.shiftRepo.Create(ctx, shift.Shift{
			EmployeeID:  req.EmployeeID,
			ObjectiveID: req.ObjectiveID,
			StartTime:   start,
			EndTime:     end,
			Status:      shift.StatusAssigned,
			SchedulerID: actorID,
			IsOvertime:  cls.OvertimeHours > 0,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create shift: %w", err)
		}
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.NewShiftResponse(created), nil
}

// Validate implements shift.AssignmentService. Rule violations come back as a
// negative result carrying the rule's message; anything else (unknown
// employee, storage failure) stays an error.
func (s *AssignmentServiceImpl) Validate(ctx context.Context, req shift.ValidateAssignmentRequest) (shift.ValidationResult, error) {
	if err := req.Validate(); err != nil {
		return shift.ValidationResult{}, err
	}

	cls, err := s.workload.ValidateAssignment(ctx, req.EmployeeID, req.StartTime.Time, req.EndTime.Time, req.ExcludeShiftID)
	if err != nil {
		var conflict *shift.ConflictError
		if errors.As(err, &conflict) {
			return shift.ValidationResult{Valid: false, Reason: conflict.Msg}, nil
		}
		return shift.ValidationResult{}, err
	}

	return shift.ValidationResult{Valid: true, Classification: cls}, nil
}

// Get implements shift.AssignmentService.
func (s *AssignmentServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.NewShiftResponse(sh), nil
}

// ListByEmployee implements shift.AssignmentService.
func (s *AssignmentServiceImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list shifts for employee: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.NewShiftResponse(sh))
	}
	return responses, nil
}
