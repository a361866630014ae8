package user

import (
	"context"
	"fmt"
	"time"

	"mindcare/config"
	"mindcare/models"
	"mindcare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is how long an issued session token stays valid.
const tokenDuration = 7 * 24 * time.Hour

// authCacheTTL bounds how long a token hash stays in the auth cache before
// the middleware falls back to the user record.
const authCacheTTL = time.Hour

// Register validates the signup, persists the user and issues a session
// token. The admin role is assigned from the configured admin email, so all
// later authorization reads a single role claim.
func (s *DefaultUserService) Register(in RegisterInput) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if in.FullName == "" || in.Email == "" || in.Password == "" || in.Institution == "" {
		return nil, ValidationError{Message: "All fields are required"}
	}
	if len(in.Password) < 6 {
		return nil, ValidationError{Message: "Password must be at least 6 characters"}
	}

	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		logger.Error("Register: email lookup failed", zap.String("email", in.Email), zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ConflictError{Message: "Email already exists"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	role := models.RoleStudent
	if config.AppConfig.AdminEmail != "" && in.Email == config.AppConfig.AdminEmail {
		role = models.RoleAdmin
	}

	now := time.Now()
	usr := &models.User{
		ID:           uuid.New().String(),
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		ProfilePic:   in.ProfilePic,
		Institution:  in.Institution,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(usr); err != nil {
		logger.Error("Register: insert failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(usr)
}

// Login verifies credentials and issues a session token.
func (s *DefaultUserService) Login(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("Login: email lookup failed", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}
	if usr == nil {
		return nil, InvalidCredentialsError{}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, InvalidCredentialsError{}
	}

	return s.issueToken(usr)
}

// Logout revokes the user's current session token.
func (s *DefaultUserService) Logout(userID string) error {
	if err := s.Repo.SetTokenHash(userID, ""); err != nil {
		utils.GetLogger().Error("Logout: failed to revoke token", zap.String("userId", userID), zap.Error(err))
		return fmt.Errorf("logout failed")
	}
	if s.AuthCache != nil {
		_ = s.AuthCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err()
	}
	return nil
}

// GetByID returns the user's profile.
func (s *DefaultUserService) GetByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("GetByID failed", zap.String("userId", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, NotFoundError{}
	}
	return usr, nil
}

func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	hash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(usr.ID, hash); err != nil {
		utils.GetLogger().Error("failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if s.AuthCache != nil {
		_ = s.AuthCache.Set(context.Background(), utils.AuthCachePrefix+usr.ID, hash, authCacheTTL).Err()
	}

	return &AuthResponse{
		ID:          usr.ID,
		Token:       token,
		FullName:    usr.FullName,
		Email:       usr.Email,
		ProfilePic:  usr.ProfilePic,
		Institution: usr.Institution,
		Role:        usr.Role,
	}, nil
}
