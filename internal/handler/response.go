package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nagi609/Clinic-Management-System/pkg/apperror"
)

// ContextUserID is the gin context key the auth middleware stores the
// authenticated owner ID under.
const ContextUserID = "user_id"

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// WriteError maps an application error to its HTTP response. Validation
// errors carry the full message list; internal errors are logged and the
// caller only sees a generic message.
func WriteError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal(err)
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Error().Err(appErr).Str("path", c.Request.URL.Path).Msg("request failed")
	}

	resp := &Response{
		Status:  "error",
		Message: appErr.Error(),
	}
	if len(appErr.Messages) > 1 {
		resp.Errors = appErr.Messages
	}
	c.JSON(appErr.StatusCode(), resp)
}

// UserID returns the authenticated owner ID set by the auth middleware.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// MustUserID is UserID for routes behind the auth middleware; a missing
// ID means the route was wired without it.
func MustUserID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("authentication required"))
		c.Abort()
	}
	return id, ok
}
