package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/objective"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/shift"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/database"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/geo"
)

type AttendanceServiceImpl struct {
	txm           *database.TxManager
	shiftRepo     shift.ShiftRepository
	objectiveRepo objective.ObjectiveRepository
	radiusKm      float64
}

func NewAttendanceService(
	txm *database.TxManager,
	shiftRepo shift.ShiftRepository,
	objectiveRepo objective.ObjectiveRepository,
	radiusKm float64,
) shift.AttendanceService {
	if radiusKm <= 0 {
		radiusKm = geo.DefaultRadiusKm
	}
	return &AttendanceServiceImpl{
		txm:           txm,
		shiftRepo:     shiftRepo,
		objectiveRepo: objectiveRepo,
		radiusKm:      radiusKm,
	}
}

// AuditAction implements shift.AttendanceService. The shift row is locked for
// the whole check so two devices reporting the same action cannot both
// transition it.
func (s *AttendanceServiceImpl) AuditAction(ctx context.Context, shiftID string, req shift.AuditActionRequest, actorEmployeeID string) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	var updated shift.Shift
	err := s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		sh, err := s.shiftRepo.GetByIDForUpdate(ctx, shiftID)
		if err != nil {
			return err
		}

		if sh.EmployeeID != actorEmployeeID {
			return shift.ErrNotShiftOwner
		}

		// Transition legality comes before the geofence: an action that is
		// illegal for the shift's status is invalid wherever it is reported
		// from.
		switch req.Action {
		case shift.ActionCheckIn:
			if sh.Status != shift.StatusAssigned {
				return shift.ErrIllegalTransition
			}
		case shift.ActionCheckOut:
			if sh.Status != shift.StatusInProgress {
				return shift.ErrIllegalTransition
			}
		default:
			return shift.ErrIllegalTransition
		}

		obj, err := s.objectiveRepo.GetByID(ctx, sh.ObjectiveID)
		if err != nil {
			return err
		}

		if !geo.IsWithin(req.Latitude, req.Longitude, obj.Latitude, obj.Longitude, s.radiusKm) {
			return shift.ErrOutsideGeofence
		}

		now := time.Now()
		switch req.Action {
		case shift.ActionCheckIn:
			sh.Status = shift.StatusInProgress
			sh.CheckInTime = &now
		case shift.ActionCheckOut:
			sh.Status = shift.StatusCompleted
			sh.CheckOutTime = &now
		}
		sh.UpdatedAt = now

		if err := s.shiftRepo.Update(ctx, sh); err != nil {
			return fmt.Errorf("update shift: %w", err)
		}

		updated = sh
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.NewShiftResponse(updated), nil
}
