package handlers

import (
	"errors"
	"net/http"

	"mindcare/services/appointment"
	"mindcare/services/counselor"
	"mindcare/services/post"
	"mindcare/services/user"
	"mindcare/services/webinar"
	"mindcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses. Typed errors carry
// client-facing messages; anything else is an internal failure.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case isAny(err,
		&appointment.ValidationError{}, &counselor.ValidationError{},
		&user.ValidationError{}, &post.ValidationError{}, &webinar.ValidationError{},
		&appointment.ConflictError{}, &counselor.ConflictError{},
		&user.ConflictError{}, &webinar.ConflictError{},
		&user.InvalidCredentialsError{}):
		status = http.StatusBadRequest
		message = err.Error()
	case isAny(err,
		&appointment.NotFoundError{}, &counselor.NotFoundError{},
		&user.NotFoundError{}, &post.NotFoundError{}, &webinar.NotFoundError{}):
		status = http.StatusNotFound
		message = err.Error()
	case isAny(err, &appointment.AccessDeniedError{}, &post.AccessDeniedError{}):
		status = http.StatusForbidden
		message = err.Error()
	default:
		utils.GetLogger().Error("request failed", zap.Error(err))
	}

	c.JSON(status, gin.H{"message": message})
}

func isAny(err error, targets ...interface{}) bool {
	for _, target := range targets {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}
