// Package payment simulates settlement for paid sessions. There is no
// gateway behind it; confirming simply moves the appointment's payment
// status forward, which is the only observable effect the client flow needs.
package payment

import (
	"fmt"

	appointmentRepo "mindcare/database/repository/appointment"
	"mindcare/models"
	"mindcare/services/appointment"
	"mindcare/utils"

	"go.uber.org/zap"
)

// PaymentService confirms payment for an appointment the caller owns.
type PaymentService interface {
	Confirm(appointmentID, callerID string) (*models.AppointmentDetail, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Repo appointmentRepo.AppointmentRepository
}

// Confirm marks a pending payment as completed.
func (s *DefaultPaymentService) Confirm(appointmentID, callerID string) (*models.AppointmentDetail, error) {
	logger := utils.GetLogger()

	appt, err := s.Repo.GetRaw(appointmentID)
	if err != nil {
		logger.Error("Confirm: fetch failed", zap.String("id", appointmentID), zap.Error(err))
		return nil, fmt.Errorf("failed to confirm payment: %w", err)
	}
	if appt == nil {
		return nil, appointment.NotFoundError{Resource: "Appointment"}
	}
	if appt.UserID != callerID {
		return nil, appointment.AccessDeniedError{Message: "Unauthorized access"}
	}

	switch appt.PaymentStatus {
	case models.PaymentFree:
		return nil, appointment.ValidationError{Message: "This session is free and requires no payment"}
	case models.PaymentCompleted:
		return nil, appointment.ValidationError{Message: "Payment has already been completed"}
	}

	if err := s.Repo.SetPaymentStatus(appointmentID, models.PaymentCompleted); err != nil {
		logger.Error("Confirm: update failed", zap.String("id", appointmentID), zap.Error(err))
		return nil, fmt.Errorf("failed to confirm payment: %w", err)
	}
	return s.Repo.GetByID(appointmentID)
}
