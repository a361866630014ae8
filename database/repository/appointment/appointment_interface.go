package appointmentRepo

import (
	"time"

	"mindcare/models"
)

// AppointmentRepository defines the data access methods used by the
// appointment lifecycle manager.
type AppointmentRepository interface {
	// Create persists a new appointment record. A write that collides with an
	// active booking for the same (counselor, date, slot) returns ErrSlotTaken.
	Create(appt *models.Appointment) error
	// FindActiveBySlot returns the non-cancelled appointment occupying the
	// given (counselor, date, slot) coordinates, or nil if the slot is open.
	FindActiveBySlot(counselorID string, date time.Time, slot string) (*models.Appointment, error)
	// GetByID returns one appointment with counselor and user summaries attached.
	GetByID(id string) (*models.AppointmentDetail, error)
	// GetRaw returns one appointment without any summaries.
	GetRaw(id string) (*models.Appointment, error)
	// ListByUser returns a user's appointments, newest appointment date first,
	// with counselor summaries attached.
	ListByUser(userID string) ([]models.AppointmentDetail, error)
	// ListByCounselor returns a counselor's appointments, newest appointment
	// date first, with user summaries attached.
	ListByCounselor(counselorID string) ([]models.AppointmentDetail, error)
	// ListAll returns every appointment, newest created first, with both
	// summaries attached.
	ListAll() ([]models.AppointmentDetail, error)
	// UpdateStatus sets status and session notes and returns the updated
	// record with the counselor summary attached.
	UpdateStatus(id, status, sessionNotes string) (*models.AppointmentDetail, error)
	// SetStatus sets only the status field.
	SetStatus(id, status string) error
	// SetPaymentStatus sets only the payment status field.
	SetPaymentStatus(id, paymentStatus string) error
	// TakenSlots returns the time slots held by non-cancelled appointments for
	// a counselor on a calendar date.
	TakenSlots(counselorID string, date time.Time) ([]string, error)
}
