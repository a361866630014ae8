package handlers

import (
	"net/http"

	counselorRepo "mindcare/database/repository/counselor"
	"mindcare/services/counselor"

	"github.com/gin-gonic/gin"
)

// CounselorHandler exposes the counselor directory endpoints.
type CounselorHandler struct {
	Service counselor.CounselorService
}

// NewCounselorHandler returns a CounselorHandler backed by the given service.
func NewCounselorHandler(svc counselor.CounselorService) *CounselorHandler {
	return &CounselorHandler{Service: svc}
}

// List handles GET /api/counselors with optional institution, specialty and
// language filters.
func (h *CounselorHandler) List(c *gin.Context) {
	filter := counselorRepo.ListFilter{
		Institution: c.Query("institution"),
		Specialty:   c.Query("specialty"),
		Language:    c.Query("language"),
	}
	// "All" from the directory dropdown means no institution filter.
	if filter.Institution == "All" {
		filter.Institution = ""
	}

	counselors, err := h.Service.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counselors)
}

// GetByID handles GET /api/counselors/:id.
func (h *CounselorHandler) GetByID(c *gin.Context) {
	result, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Specialties handles GET /api/counselors/specialties.
func (h *CounselorHandler) Specialties(c *gin.Context) {
	specialties, err := h.Service.Specialties()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialties": specialties})
}

// Create handles POST /api/counselors (admin only).
func (h *CounselorHandler) Create(c *gin.Context) {
	var req struct {
		Name           string   `json:"name"`
		Email          string   `json:"email"`
		Specialties    []string `json:"specialties"`
		Availability   []string `json:"availability"`
		Languages      []string `json:"languages"`
		Institution    string   `json:"institution"`
		ProfilePic     string   `json:"profilePic"`
		Bio            string   `json:"bio"`
		Qualifications []string `json:"qualifications"`
		Experience     int      `json:"experience"`
		SessionFee     *float64 `json:"sessionFee"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.Add(counselor.CounselorInput{
		Name:           req.Name,
		Email:          req.Email,
		Specialties:    req.Specialties,
		Availability:   req.Availability,
		Languages:      req.Languages,
		Institution:    req.Institution,
		ProfilePic:     req.ProfilePic,
		Bio:            req.Bio,
		Qualifications: req.Qualifications,
		Experience:     req.Experience,
		SessionFee:     req.SessionFee,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Counselor added successfully",
		"counselor": created,
	})
}

// Update handles PUT /api/counselors/:id (admin only).
func (h *CounselorHandler) Update(c *gin.Context) {
	var req struct {
		Name           *string  `json:"name"`
		Email          *string  `json:"email"`
		Specialties    []string `json:"specialties"`
		Availability   []string `json:"availability"`
		Languages      []string `json:"languages"`
		Institution    *string  `json:"institution"`
		ProfilePic     *string  `json:"profilePic"`
		Bio            *string  `json:"bio"`
		Qualifications []string `json:"qualifications"`
		Experience     *int     `json:"experience"`
		SessionFee     *float64 `json:"sessionFee"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Param("id"), counselor.CounselorUpdate{
		Name:           req.Name,
		Email:          req.Email,
		Specialties:    req.Specialties,
		Availability:   req.Availability,
		Languages:      req.Languages,
		Institution:    req.Institution,
		ProfilePic:     req.ProfilePic,
		Bio:            req.Bio,
		Qualifications: req.Qualifications,
		Experience:     req.Experience,
		SessionFee:     req.SessionFee,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Counselor updated successfully",
		"counselor": updated,
	})
}

// Delete handles DELETE /api/counselors/:id (admin only, soft delete).
func (h *CounselorHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Counselor deleted successfully"})
}
