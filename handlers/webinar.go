package handlers

import (
	"net/http"
	"time"

	"mindcare/middleware"
	"mindcare/services/webinar"

	"github.com/gin-gonic/gin"
)

// WebinarHandler exposes the webinar schedule endpoints.
type WebinarHandler struct {
	Service webinar.WebinarService
}

// NewWebinarHandler returns a WebinarHandler backed by the given service.
func NewWebinarHandler(svc webinar.WebinarService) *WebinarHandler {
	return &WebinarHandler{Service: svc}
}

// Create handles POST /api/webinars (admin only).
func (h *WebinarHandler) Create(c *gin.Context) {
	var req struct {
		Title       string    `json:"title" binding:"required"`
		Description string    `json:"description"`
		Host        string    `json:"host" binding:"required"`
		Trait       string    `json:"trait"`
		Date        time.Time `json:"date" binding:"required"`
		Time        string    `json:"time"`
		Duration    int       `json:"duration"`
		MeetingLink string    `json:"meetingLink"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.Create(c.GetString(middleware.CtxUserID), webinar.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Host:        req.Host,
		Trait:       req.Trait,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		MeetingLink: req.MeetingLink,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List handles GET /api/webinars.
func (h *WebinarHandler) List(c *gin.Context) {
	webinars, err := h.Service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, webinars)
}

// Join handles POST /api/webinars/:id/join.
func (h *WebinarHandler) Join(c *gin.Context) {
	result, err := h.Service.Join(c.Param("id"), c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully registered for webinar",
		"webinar": result,
	})
}

// Delete handles DELETE /api/webinars/:id (admin only).
func (h *WebinarHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Webinar deleted successfully"})
}
