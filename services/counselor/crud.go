package counselor

import (
	"context"
	"fmt"
	"strings"
	"time"

	counselorRepo "mindcare/database/repository/counselor"
	"mindcare/models"
	"mindcare/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const profilePicFolder = "counselor_profiles"

// resolveProfilePic uploads inline base64 image data to Cloudinary and
// returns the hosted URL; plain URLs pass through untouched.
func (s *DefaultCounselorService) resolveProfilePic(profilePic string) (string, error) {
	if profilePic == "" || profilePic == placeholderProfilePic {
		return placeholderProfilePic, nil
	}
	if !strings.HasPrefix(profilePic, "data:image") {
		return profilePic, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	res, err := s.Storage.Upload(ctx, profilePic, profilePicFolder)
	if err != nil {
		return "", fmt.Errorf("failed to upload profile picture: %w", err)
	}
	return res.URL, nil
}

// Add validates and persists a new counselor.
func (s *DefaultCounselorService) Add(in CounselorInput) (*models.Counselor, error) {
	logger := utils.GetLogger()

	if in.Name == "" || in.Email == "" || in.Institution == "" {
		return nil, ValidationError{Message: "Missing required fields: name, email, or institution"}
	}
	if len(in.Specialties) == 0 {
		return nil, ValidationError{Message: "At least one specialty is required"}
	}
	if len(in.Languages) == 0 {
		return nil, ValidationError{Message: "At least one language is required"}
	}
	if in.SessionFee == nil {
		return nil, ValidationError{Message: "Session fee is required"}
	}

	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		logger.Error("Add: email lookup failed", zap.String("email", in.Email), zap.Error(err))
		return nil, fmt.Errorf("failed to add counselor: %w", err)
	}
	if existing != nil {
		return nil, ConflictError{Message: "Counselor with this email already exists. Please use a different email or update the existing counselor."}
	}

	profilePic, err := s.resolveProfilePic(in.ProfilePic)
	if err != nil {
		logger.Error("Add: profile picture upload failed", zap.Error(err))
		return nil, err
	}

	qualifications := in.Qualifications
	if qualifications == nil {
		qualifications = []string{}
	}

	now := time.Now()
	counselor := &models.Counselor{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Email:          in.Email,
		Specialties:    in.Specialties,
		Availability:   in.Availability,
		Languages:      in.Languages,
		Institution:    in.Institution,
		ProfilePic:     profilePic,
		Bio:            in.Bio,
		Qualifications: qualifications,
		Experience:     in.Experience,
		SessionFee:     *in.SessionFee,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repo.Create(counselor); err != nil {
		logger.Error("Add: insert failed", zap.Error(err))
		return nil, fmt.Errorf("failed to add counselor: %w", err)
	}
	s.invalidateListCache()
	return counselor, nil
}

// Update applies a partial update, uploading a new inline profile picture
// when one is supplied.
func (s *DefaultCounselorService) Update(id string, in CounselorUpdate) (*models.Counselor, error) {
	logger := utils.GetLogger()

	fields := bson.M{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Specialties != nil {
		fields["specialties"] = in.Specialties
	}
	if in.Availability != nil {
		fields["availability"] = in.Availability
	}
	if in.Languages != nil {
		fields["languages"] = in.Languages
	}
	if in.Institution != nil {
		fields["institution"] = *in.Institution
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.Qualifications != nil {
		fields["qualifications"] = in.Qualifications
	}
	if in.Experience != nil {
		fields["experience"] = *in.Experience
	}
	if in.SessionFee != nil {
		fields["sessionFee"] = *in.SessionFee
	}
	if in.ProfilePic != nil && *in.ProfilePic != "" {
		pic, err := s.resolveProfilePic(*in.ProfilePic)
		if err != nil {
			logger.Error("Update: profile picture upload failed", zap.Error(err))
			return nil, err
		}
		fields["profilePic"] = pic
	}

	if len(fields) == 0 {
		return nil, ValidationError{Message: "No updatable fields provided"}
	}

	updated, err := s.Repo.Update(id, fields)
	if err != nil {
		logger.Error("Update: update failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update counselor: %w", err)
	}
	if updated == nil {
		return nil, NotFoundError{}
	}
	s.invalidateListCache()
	return updated, nil
}

// Delete soft-deletes the counselor; the record is kept for historical reads.
func (s *DefaultCounselorService) Delete(id string) error {
	found, err := s.Repo.SoftDelete(id)
	if err != nil {
		utils.GetLogger().Error("Delete failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete counselor: %w", err)
	}
	if !found {
		return NotFoundError{}
	}
	s.invalidateListCache()
	return nil
}

// GetByID returns one counselor.
func (s *DefaultCounselorService) GetByID(id string) (*models.Counselor, error) {
	counselor, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("GetByID failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch counselor: %w", err)
	}
	if counselor == nil {
		return nil, NotFoundError{}
	}
	return counselor, nil
}

// Specialties returns the distinct specialty labels across active counselors.
func (s *DefaultCounselorService) Specialties() ([]string, error) {
	counselors, err := s.List(counselorRepo.ListFilter{})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var specialties []string
	for _, c := range counselors {
		for _, sp := range c.Specialties {
			if !seen[sp] {
				seen[sp] = true
				specialties = append(specialties, sp)
			}
		}
	}
	return specialties, nil
}
