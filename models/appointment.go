package models

import "time"

// Appointment statuses. Completed and cancelled are terminal.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Payment statuses for an appointment.
const (
	PaymentFree      = "free"
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
)

// Urgency levels for the clinical intake.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
	UrgencyCrisis = "crisis"
)

// Appointment represents one requested or held counseling session.
// Cancellation is non-destructive: records are only ever terminated by
// flipping Status, never deleted.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	CounselorID     string    `bson:"counselorId" json:"counselorId"`
	AppointmentDate time.Time `bson:"appointmentDate" json:"appointmentDate"`
	TimeSlot        string    `bson:"timeSlot" json:"timeSlot"`
	Reason          string    `bson:"reason" json:"reason"`
	Urgency         string    `bson:"urgency" json:"urgency"`
	PreviousCounseling string `bson:"previousCounseling" json:"previousCounseling"` // no | yes-helpful | yes-mixed | yes-unhelpful
	Status          string    `bson:"status" json:"status"`
	PaymentStatus   string    `bson:"paymentStatus" json:"paymentStatus"`
	PaymentAmount   float64   `bson:"paymentAmount" json:"paymentAmount"`
	IsFreeSession   bool      `bson:"isFreeSession" json:"isFreeSession"`
	SessionNotes    string    `bson:"sessionNotes" json:"sessionNotes"`
	UserInstitution string    `bson:"userInstitution" json:"userInstitution"` // copied from the user at creation time
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentDetail is an appointment with the referenced counselor and/or
// user summaries attached, matching what list and get reads return.
type AppointmentDetail struct {
	Appointment `bson:",inline"`
	Counselor   *CounselorSummary `bson:"counselor,omitempty" json:"counselor,omitempty"`
	User        *UserSummary      `bson:"user,omitempty" json:"user,omitempty"`
}

// SlotAvailability reports one bookable slot for a counselor on a date.
type SlotAvailability struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
