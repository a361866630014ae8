package appointment

import (
	"fmt"

	"mindcare/models"
	"mindcare/utils"

	"go.uber.org/zap"
)

// ListForUser returns the caller's appointments, newest appointment date
// first, with counselor summaries.
func (s *DefaultAppointmentService) ListForUser(userID string) ([]models.AppointmentDetail, error) {
	appts, err := s.Repo.ListByUser(userID)
	if err != nil {
		utils.GetLogger().Error("ListForUser failed", zap.String("userId", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// ListForCounselor returns a counselor's appointments with user summaries.
// Any authenticated caller may query any counselor.
func (s *DefaultAppointmentService) ListForCounselor(counselorID string) ([]models.AppointmentDetail, error) {
	appts, err := s.Repo.ListByCounselor(counselorID)
	if err != nil {
		utils.GetLogger().Error("ListForCounselor failed", zap.String("counselorId", counselorID), zap.Error(err))
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// ListAll returns every appointment, newest created first, with both
// summaries. Admin gating happens at the route layer.
func (s *DefaultAppointmentService) ListAll() ([]models.AppointmentDetail, error) {
	appts, err := s.Repo.ListAll()
	if err != nil {
		utils.GetLogger().Error("ListAll failed", zap.Error(err))
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// GetByID returns one appointment with both summaries. Only the owning user
// may read it; the assigned counselor and admins are not granted access.
func (s *DefaultAppointmentService) GetByID(id, callerID string) (*models.AppointmentDetail, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("GetByID failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return nil, NotFoundError{Resource: "Appointment"}
	}
	if appt.UserID != callerID {
		return nil, AccessDeniedError{Message: "Unauthorized access"}
	}
	return appt, nil
}
