package handlers

import (
	"errors"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"ratecurves/internal/calendar"
	apperrors "ratecurves/internal/errors"
	"ratecurves/internal/logger"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// parseTradingDate parses a YYYY-MM-DD value taken from the request.
// Returns ErrInvalidInput naming the field when it is malformed.
func parseTradingDate(field, value string) (civil.Date, error) {
	d, err := calendar.ParseDate(value)
	if err != nil {
		return civil.Date{}, apperrors.Newf(apperrors.ErrInvalidInput, "Invalid %s %q, expected YYYY-MM-DD", field, value)
	}
	return d, nil
}

// bindError turns a binding failure into ErrInvalidInput.
func bindError(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil || appErr.Kind == apperrors.KindIntegrityViolation {
			fields := []interface{}{
				"code", appErr.Code,
				"message", appErr.Message,
				"path", c.Request.URL.Path,
			}
			if appErr.Internal != nil {
				fields = append(fields, "internal", appErr.Internal.Error())
			}
			logger.Get().Errorw("app error", fields...)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
