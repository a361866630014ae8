// Package webinar manages scheduled group sessions. Creation and deletion
// are admin-only, enforced at the route layer by the role claim.
package webinar

import (
	"fmt"
	"time"

	webinarRepo "mindcare/database/repository/webinar"
	"mindcare/models"
	"mindcare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInput carries a new webinar submission.
type CreateInput struct {
	Title       string
	Description string
	Host        string
	Trait       string
	Date        time.Time
	Time        string
	Duration    int
	MeetingLink string
}

// WebinarService owns the webinar schedule.
type WebinarService interface {
	Create(createdBy string, in CreateInput) (*models.Webinar, error)
	List() ([]models.WebinarDetail, error)
	// Join registers the caller as an attendee.
	Join(id, userID string) (*models.Webinar, error)
	Delete(id string) error
}

// DefaultWebinarService is the production implementation.
type DefaultWebinarService struct {
	Repo webinarRepo.WebinarRepository
}

// NotFoundError reports an unresolvable webinar id.
type NotFoundError struct{}

func (NotFoundError) Error() string { return "Webinar not found" }

// ValidationError reports rejected input.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// ConflictError reports a duplicate registration.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string { return e.Message }

// Create persists a new webinar.
func (s *DefaultWebinarService) Create(createdBy string, in CreateInput) (*models.Webinar, error) {
	if in.Title == "" || in.Host == "" {
		return nil, ValidationError{Message: "Title and host are required"}
	}
	if in.Date.IsZero() {
		return nil, ValidationError{Message: "Webinar date is required"}
	}

	now := time.Now()
	webinar := &models.Webinar{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Host:        in.Host,
		Trait:       in.Trait,
		Date:        in.Date,
		Time:        in.Time,
		Duration:    in.Duration,
		MeetingLink: in.MeetingLink,
		CreatedBy:   createdBy,
		Attendees:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(webinar); err != nil {
		utils.GetLogger().Error("Create webinar failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create webinar: %w", err)
	}
	return webinar, nil
}

// List returns all webinars, soonest first.
func (s *DefaultWebinarService) List() ([]models.WebinarDetail, error) {
	webinars, err := s.Repo.List()
	if err != nil {
		utils.GetLogger().Error("List webinars failed", zap.Error(err))
		return nil, fmt.Errorf("failed to list webinars: %w", err)
	}
	return webinars, nil
}

// Join registers the caller and returns the updated webinar.
func (s *DefaultWebinarService) Join(id, userID string) (*models.Webinar, error) {
	webinar, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to join webinar: %w", err)
	}
	if webinar == nil {
		return nil, NotFoundError{}
	}

	added, err := s.Repo.AddAttendee(id, userID)
	if err != nil {
		utils.GetLogger().Error("Join webinar failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to join webinar: %w", err)
	}
	if !added {
		return nil, ConflictError{Message: "Already registered for this webinar"}
	}
	return s.Repo.GetByID(id)
}

// Delete removes a webinar.
func (s *DefaultWebinarService) Delete(id string) error {
	found, err := s.Repo.Delete(id)
	if err != nil {
		utils.GetLogger().Error("Delete webinar failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete webinar: %w", err)
	}
	if !found {
		return NotFoundError{}
	}
	return nil
}
