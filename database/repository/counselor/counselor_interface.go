package counselorRepo

import (
	"mindcare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListFilter narrows the counselor directory listing.
type ListFilter struct {
	Institution string
	Specialty   string
	Language    string
}

// CounselorRepository defines data access for the counselor directory.
type CounselorRepository interface {
	Create(counselor *models.Counselor) error
	// GetByID returns a counselor by id, or (nil, nil) when missing.
	GetByID(id string) (*models.Counselor, error)
	// GetByEmail returns a counselor by email, or (nil, nil) when missing.
	GetByEmail(email string) (*models.Counselor, error)
	// List returns active counselors matching the filter, newest first.
	List(filter ListFilter) ([]models.Counselor, error)
	// Update applies a partial update and returns the updated record,
	// or (nil, nil) when the id does not resolve.
	Update(id string, fields bson.M) (*models.Counselor, error)
	// SoftDelete flips isActive to false; the record is never removed.
	SoftDelete(id string) (bool, error)
}
