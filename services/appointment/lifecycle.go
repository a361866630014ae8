package appointment

import (
	"fmt"
	"time"

	"mindcare/models"
	"mindcare/utils"

	"go.uber.org/zap"
)

// cancelCutoff is the window before the scheduled time inside which only
// pending appointments may still be cancelled.
const cancelCutoff = 24 * time.Hour

// validTransitions encodes the appointment state machine. Completed and
// cancelled are terminal.
var validTransitions = map[string][]string{
	models.AppointmentPending:   {models.AppointmentConfirmed, models.AppointmentCompleted, models.AppointmentCancelled},
	models.AppointmentConfirmed: {models.AppointmentCompleted, models.AppointmentCancelled},
	models.AppointmentCompleted: {},
	models.AppointmentCancelled: {},
}

func transitionAllowed(from, to string) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus sets the appointment status and session notes. Any
// authenticated caller may invoke this; only the transition itself is
// validated.
func (s *DefaultAppointmentService) UpdateStatus(id, status, sessionNotes string) (*models.AppointmentDetail, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetRaw(id)
	if err != nil {
		logger.Error("UpdateStatus: fetch failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	if existing == nil {
		return nil, NotFoundError{Resource: "Appointment"}
	}

	if status != existing.Status && !transitionAllowed(existing.Status, status) {
		return nil, ValidationError{
			Message: fmt.Sprintf("Cannot change appointment status from %s to %s", existing.Status, status),
		}
	}

	updated, err := s.Repo.UpdateStatus(id, status, sessionNotes)
	if err != nil {
		logger.Error("UpdateStatus: update failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	if updated == nil {
		return nil, NotFoundError{Resource: "Appointment"}
	}
	return updated, nil
}

// Cancel sets the appointment to cancelled, non-destructively. Only the
// owning user may cancel, and inside the 24-hour window only pending
// appointments can still be cancelled.
func (s *DefaultAppointmentService) Cancel(id, callerID string) (*models.AppointmentDetail, error) {
	logger := utils.GetLogger()

	appt, err := s.Repo.GetRaw(id)
	if err != nil {
		logger.Error("Cancel: fetch failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}
	if appt == nil {
		return nil, NotFoundError{Resource: "Appointment"}
	}
	if appt.UserID != callerID {
		return nil, AccessDeniedError{Message: "Unauthorized access"}
	}

	if time.Until(appt.AppointmentDate) < cancelCutoff && appt.Status != models.AppointmentPending {
		return nil, ValidationError{
			Message: "Cannot cancel appointment less than 24 hours before scheduled time",
		}
	}

	if err := s.Repo.SetStatus(id, models.AppointmentCancelled); err != nil {
		logger.Error("Cancel: update failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}
	return s.Repo.GetByID(id)
}
