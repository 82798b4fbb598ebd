package controller

import (
	"errors"
	"net/http"

	"ramen-kiosk/logger"
	"ramen-kiosk/web/entity"
	"ramen-kiosk/web/service"

	"github.com/gin-gonic/gin"
)

// jsonMsg sends a success confirmation.
func jsonMsg(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, entity.Msg{
		Success: true,
		Msg:     msg,
	})
}

// jsonObj sends a plain object response.
func jsonObj(c *gin.Context, obj any) {
	c.JSON(http.StatusOK, obj)
}

// jsonError maps a service error onto its HTTP status. Datastore failures
// are logged in full and sanitized to a generic 500.
func jsonError(c *gin.Context, msg string, err error) {
	status := http.StatusInternalServerError
	detail := msg

	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
		detail = msg
	case errors.Is(err, service.ErrUsernameTaken):
		status = http.StatusBadRequest
		detail = err.Error()
	case errors.Is(err, service.ErrBadCredentials):
		status = http.StatusBadRequest
		detail = err.Error()
	case errors.Is(err, service.ErrInvalidToken):
		status = http.StatusUnauthorized
		detail = err.Error()
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		detail = err.Error()
	case errors.Is(err, service.ErrCartItemNotFound):
		status = http.StatusNotFound
		detail = err.Error()
	default:
		logger.Errorf("%s: %v", msg, err)
	}

	c.JSON(status, entity.Msg{
		Success: false,
		Msg:     detail,
	})
}

// jsonBadRequest reports a malformed request body or parameter.
func jsonBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, entity.Msg{
		Success: false,
		Msg:     msg,
	})
}
