package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/models"
	"healthcare-portal/internal/utils"
)

// respondError maps a service error onto the response envelope. Form problems carry
// their field messages so the client can render them inline.
func respondError(c *gin.Context, log *logrus.Logger, function string, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.ValidationFailed(c, verr.Fields)
	case errors.Is(err, models.ErrInvalidCredentials):
		utils.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, models.ErrNotFound):
		utils.NotFound(c, "Account not found")
	default:
		log.WithFields(logrus.Fields{
			"Function": function,
			"Error":    err,
		}).Error("Request failed")
		utils.InternalServerError(c, "Something went wrong. Please try again.")
	}
}

// callerIdentity reads the authenticated identity, answering 401 when it is missing.
func callerIdentity(c *gin.Context, identity func(*gin.Context) (string, bool)) (string, bool) {
	id, ok := identity(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
	}
	return id, ok
}
