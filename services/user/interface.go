package user

import (
	userRepo "mindcare/database/repository/user"
	"mindcare/models"

	"github.com/go-redis/redis/v8"
)

// RegisterInput carries a signup submission.
type RegisterInput struct {
	FullName    string
	Email       string
	Password    string
	Institution string
	ProfilePic  string
}

// AuthResponse contains the user's ID, token, and profile details.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	ProfilePic  string `json:"profilePic,omitempty"`
	Institution string `json:"institution,omitempty"`
	Role        string `json:"role"`
}

// UserService handles registration, authentication and profile reads.
type UserService interface {
	Register(in RegisterInput) (*AuthResponse, error)
	Login(email, password string) (*AuthResponse, error)
	Logout(userID string) error
	GetByID(userID string) (*models.User, error)
}

// DefaultUserService is the production implementation. AuthCache is
// optional; when nil token hashes are only kept on the user record.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}

// ValidationError reports rejected signup input.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// ConflictError reports a duplicate email.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string { return e.Message }

// InvalidCredentialsError reports a failed login.
type InvalidCredentialsError struct{}

func (InvalidCredentialsError) Error() string { return "Invalid credentials" }

// NotFoundError reports an unresolvable user id.
type NotFoundError struct{}

func (NotFoundError) Error() string { return "User not found" }
