package appointment

import (
	"time"

	appointmentRepo "mindcare/database/repository/appointment"
	counselorRepo "mindcare/database/repository/counselor"
	userRepo "mindcare/database/repository/user"
	"mindcare/models"
)

// CreateInput carries the booking form submission.
type CreateInput struct {
	CounselorID        string
	AppointmentDate    time.Time
	TimeSlot           string
	Reason             string
	Urgency            string
	PreviousCounseling string
	// PaymentAmount is caller-supplied and trusted, mirroring the existing
	// client contract; the counselor fee and a flat fallback apply when it
	// is zero.
	PaymentAmount float64
}

// AppointmentService owns all validated writes and scoped reads against the
// appointment collection.
type AppointmentService interface {
	Create(userID string, in CreateInput) (*models.AppointmentDetail, error)
	ListForUser(userID string) ([]models.AppointmentDetail, error)
	ListForCounselor(counselorID string) ([]models.AppointmentDetail, error)
	ListAll() ([]models.AppointmentDetail, error)
	GetByID(id, callerID string) (*models.AppointmentDetail, error)
	UpdateStatus(id, status, sessionNotes string) (*models.AppointmentDetail, error)
	Cancel(id, callerID string) (*models.AppointmentDetail, error)
	SlotAvailability(counselorID string, date time.Time) ([]models.SlotAvailability, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo          appointmentRepo.AppointmentRepository
	CounselorRepo counselorRepo.CounselorRepository
	UserRepo      userRepo.UserRepository
}
