package appointment

import (
	"errors"
	"fmt"
	"time"

	appointmentRepo "mindcare/database/repository/appointment"
	"mindcare/models"
	"mindcare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fallbackSessionFee applies when neither the caller nor the counselor record
// supplies a fee.
const fallbackSessionFee = 500

// normalizeDate pins an appointment date to midnight UTC so the
// (counselor, date, slot) coordinates compare exactly.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Create validates the booking, persists a new pending appointment and
// returns it with the counselor summary attached.
func (s *DefaultAppointmentService) Create(userID string, in CreateInput) (*models.AppointmentDetail, error) {
	logger := utils.GetLogger()

	counselor, err := s.CounselorRepo.GetByID(in.CounselorID)
	if err != nil {
		logger.Error("Create: counselor lookup failed", zap.String("counselorId", in.CounselorID), zap.Error(err))
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	if counselor == nil {
		return nil, NotFoundError{Resource: "Counselor"}
	}

	user, err := s.UserRepo.GetByID(userID)
	if err != nil {
		logger.Error("Create: user lookup failed", zap.String("userId", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	if user == nil {
		return nil, NotFoundError{Resource: "User"}
	}

	date := normalizeDate(in.AppointmentDate)

	existing, err := s.Repo.FindActiveBySlot(in.CounselorID, date, in.TimeSlot)
	if err != nil {
		logger.Error("Create: slot check failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	if existing != nil {
		return nil, ConflictError{Message: "This time slot is already booked"}
	}

	// Caller amount wins, then the counselor's configured fee, then the flat
	// fallback.
	amount := in.PaymentAmount
	if amount == 0 {
		amount = counselor.SessionFee
	}
	if amount == 0 {
		amount = fallbackSessionFee
	}

	institution := user.Institution
	if institution == "" {
		institution = "Unknown"
	}

	paymentStatus := models.PaymentPending
	if amount == 0 {
		paymentStatus = models.PaymentFree
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:                 uuid.New().String(),
		UserID:             userID,
		CounselorID:        in.CounselorID,
		AppointmentDate:    date,
		TimeSlot:           in.TimeSlot,
		Reason:             in.Reason,
		Urgency:            in.Urgency,
		PreviousCounseling: in.PreviousCounseling,
		Status:             models.AppointmentPending,
		PaymentStatus:      paymentStatus,
		PaymentAmount:      amount,
		IsFreeSession:      amount == 0,
		UserInstitution:    institution,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.Repo.Create(appt); err != nil {
		// Two racing creates can both pass the existence check; the partial
		// unique index settles it and the loser surfaces the same conflict.
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, ConflictError{Message: "This time slot is already booked"}
		}
		logger.Error("Create: insert failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return s.Repo.GetByID(appt.ID)
}
