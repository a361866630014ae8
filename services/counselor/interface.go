package counselor

import (
	counselorRepo "mindcare/database/repository/counselor"
	"mindcare/models"
	"mindcare/services/storage"

	"github.com/go-redis/redis/v8"
)

// placeholderProfilePic is used when no profile picture is supplied.
const placeholderProfilePic = "/placeholder-user.jpg"

// CounselorInput carries a new counselor submission.
type CounselorInput struct {
	Name           string
	Email          string
	Specialties    []string
	Availability   []string
	Languages      []string
	Institution    string
	ProfilePic     string
	Bio            string
	Qualifications []string
	Experience     int
	// SessionFee is a pointer so an explicit zero fee is distinguishable
	// from an omitted one.
	SessionFee *float64
}

// CounselorUpdate carries a patch-style counselor update; nil fields are
// left untouched.
type CounselorUpdate struct {
	Name           *string
	Email          *string
	Specialties    []string
	Availability   []string
	Languages      []string
	Institution    *string
	ProfilePic     *string
	Bio            *string
	Qualifications []string
	Experience     *int
	SessionFee     *float64
}

// CounselorService owns the counselor directory.
type CounselorService interface {
	List(filter counselorRepo.ListFilter) ([]models.Counselor, error)
	GetByID(id string) (*models.Counselor, error)
	Add(in CounselorInput) (*models.Counselor, error)
	Update(id string, in CounselorUpdate) (*models.Counselor, error)
	Delete(id string) error
	// Specialties returns the distinct specialty labels across active
	// counselors, for the booking filter.
	Specialties() ([]string, error)
}

// DefaultCounselorService is the production implementation. Cache is
// optional; when nil the directory listing is always served from the store.
type DefaultCounselorService struct {
	Repo    counselorRepo.CounselorRepository
	Storage storage.StorageService
	Cache   *redis.Client
}

// NotFoundError reports an unresolvable counselor id.
type NotFoundError struct{}

func (NotFoundError) Error() string { return "Counselor not found" }

// ValidationError reports rejected input.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// ConflictError reports a duplicate email.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string { return e.Message }
