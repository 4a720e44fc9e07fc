package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/durvibangera/sorte/internal/pkg/logger"
	pkgvalidator "github.com/durvibangera/sorte/internal/pkg/validator"
	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

// APIResponse is the envelope for every JSON response
type APIResponse struct {
	Success    bool        `json:"success" example:"true"`
	StatusCode int         `json:"statusCode" example:"200"`
	Message    string      `json:"message,omitempty" example:"ok"`
	Code       string      `json:"code,omitempty" example:"NOT_FOUND"`
	Data       interface{} `json:"data,omitempty"`
}

// Success sends a 200 OK response with data
func Success(c *gin.Context, data interface{}, message ...string) {
	send(c, http.StatusOK, data, message...)
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}, message ...string) {
	send(c, http.StatusCreated, data, message...)
}

func send(c *gin.Context, status int, data interface{}, message ...string) {
	msg := ""
	if len(message) > 0 {
		msg = message[0]
	}
	c.JSON(status, APIResponse{
		Success:    true,
		StatusCode: status,
		Message:    msg,
		Data:       data,
	})
}

// Error sends an error response with custom status code and message
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	code := ""
	if len(errorCode) > 0 {
		code = errorCode[0]
	}

	c.JSON(statusCode, APIResponse{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	})
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadRequest, message, errorCode...)
}

// Unauthorized sends a 401 Unauthorized error
func Unauthorized(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusUnauthorized, message, errorCode...)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

// Conflict sends a 409 Conflict error
func Conflict(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusConflict, message, errorCode...)
}

// ValidationError sends a 422 Unprocessable Entity error
func ValidationError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusUnprocessableEntity, message, errorCode...)
}

// TooManyRequests sends a 429 error
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message, "RATE_LIMITED")
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusInternalServerError, message, errorCode...)
}

// NotImplemented sends a 501 Not Implemented error
func NotImplemented(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotImplemented, message, errorCode...)
}

// ServiceUnavailable sends a 503 Service Unavailable error
func ServiceUnavailable(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusServiceUnavailable, message, errorCode...)
}

// BindJSONError handles request body decode errors. Binding tag failures
// are reported as validation errors, anything else as malformed JSON.
func BindJSONError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		ValidationFailed(c, pkgvalidator.FormatErrors(verrs))
		return
	}
	BadRequest(c, "Invalid request format", "INVALID_JSON")
}

// ValidationFailed handles validation errors
func ValidationFailed(c *gin.Context, message string) {
	ValidationError(c, message, "VALIDATION_FAILED")
}

// FromError maps a domain error onto the matching HTTP response.
// Internal causes are logged and replaced by a generic message.
func FromError(c *gin.Context, err error) {
	msg := apperrors.MessageOf(err)

	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		NotFound(c, msg, "NOT_FOUND")
	case apperrors.KindConflict:
		Conflict(c, msg, "CONFLICT")
	case apperrors.KindValidation:
		ValidationFailed(c, msg)
	case apperrors.KindInvalidCredentials:
		BadRequest(c, msg, "INVALID_CREDENTIALS")
	case apperrors.KindUnauthenticated:
		Unauthorized(c, msg, "AUTH_FAILED")
	case apperrors.KindUnimplemented:
		NotImplemented(c, msg, "NOT_IMPLEMENTED")
	case apperrors.KindUnavailable:
		ServiceUnavailable(c, msg, "SERVICE_UNAVAILABLE")
	default:
		fields := []zap.Field{
			zap.String("requestId", c.GetString("requestID")),
			zap.Error(err),
		}
		if c.Request != nil {
			fields = append(fields, zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
		}
		logger.L().Error("request failed", fields...)
		InternalServerError(c, msg, "INTERNAL_ERROR")
	}
}
