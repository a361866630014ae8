package handlers

import (
	"net/http"
	"time"

	"mindcare/middleware"
	"mindcare/services/appointment"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the booking endpoints.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// NewAppointmentHandler returns an AppointmentHandler backed by the given service.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// Create handles POST /api/appointments.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req struct {
		CounselorID        string    `json:"counselorId" binding:"required"`
		AppointmentDate    time.Time `json:"appointmentDate" binding:"required"`
		TimeSlot           string    `json:"timeSlot" binding:"required"`
		Reason             string    `json:"reason"`
		Urgency            string    `json:"urgency" binding:"omitempty,oneof=low medium high crisis"`
		PreviousCounseling string    `json:"previousCounseling" binding:"omitempty,oneof=no yes-helpful yes-mixed yes-unhelpful"`
		PaymentAmount      float64   `json:"paymentAmount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	userID := c.GetString(middleware.CtxUserID)
	created, err := h.Service.Create(userID, appointment.CreateInput{
		CounselorID:        req.CounselorID,
		AppointmentDate:    req.AppointmentDate,
		TimeSlot:           req.TimeSlot,
		Reason:             req.Reason,
		Urgency:            req.Urgency,
		PreviousCounseling: req.PreviousCounseling,
		PaymentAmount:      req.PaymentAmount,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment created successfully",
		"appointment": created,
	})
}

// ListUser handles GET /api/appointments/user.
func (h *AppointmentHandler) ListUser(c *gin.Context) {
	appointments, err := h.Service.ListForUser(c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// ListCounselor handles GET /api/appointments/counselor/:counselorId.
func (h *AppointmentHandler) ListCounselor(c *gin.Context) {
	appointments, err := h.Service.ListForCounselor(c.Param("counselorId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// ListAll handles GET /api/appointments/all (admin only).
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	appointments, err := h.Service.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// Slots handles GET /api/appointments/slots?counselorId=...&date=YYYY-MM-DD.
func (h *AppointmentHandler) Slots(c *gin.Context) {
	counselorID := c.Query("counselorId")
	if counselorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "counselorId is required"})
		return
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date must be in YYYY-MM-DD format"})
		return
	}

	slots, err := h.Service.SlotAvailability(counselorID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GetByID handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetByID(c *gin.Context) {
	appt, err := h.Service.GetByID(c.Param("id"), c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateStatus handles PUT /api/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status       string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
		SessionNotes string `json:"sessionNotes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateStatus(c.Param("id"), req.Status, req.SessionNotes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment status updated successfully",
		"appointment": updated,
	})
}

// Cancel handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	cancelled, err := h.Service.Cancel(c.Param("id"), c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment cancelled successfully",
		"appointment": cancelled,
	})
}
