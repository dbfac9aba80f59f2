package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "bondbazaar/internal/errors"
	"bondbazaar/internal/logger"
	"bondbazaar/internal/middleware"
)

// ErrorResponse is the JSON error envelope, documented for Swagger.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// getPrincipal extracts the authenticated caller's principal from the Gin
// context. Returns ErrUnauthorized if not present.
func getPrincipal(c *gin.Context) (string, error) {
	principal, exists := c.Get(middleware.PrincipalKey)
	if !exists {
		return "", apperrors.ErrUnauthorized
	}
	return principal.(string), nil
}

// parseBondID parses the bond id path parameter. Registry ids are positive
// integers.
func parseBondID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid bond id")
	}
	return id, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
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
