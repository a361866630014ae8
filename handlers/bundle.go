package handlers

import (
	userRepoPkg "mindcare/database/repository/user"

	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups all endpoint handlers plus the dependencies the
// route layer needs to build middleware.
type HandlerBundle struct {
	// UserRepo and AuthCache back the JWT middleware.
	UserRepo  userRepoPkg.UserRepository
	AuthCache *redis.Client

	Auth        *AuthHandler
	Counselor   *CounselorHandler
	Appointment *AppointmentHandler
	Payment     *PaymentHandler
	Post        *PostHandler
	Webinar     *WebinarHandler
}
