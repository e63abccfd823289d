package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-ledger-indexer/internal/api/shared/errors"
	"github.com/feral-file/ff-ledger-indexer/internal/logger"
)

// errorResponse wraps an API error in the standard error envelope
type errorResponse struct {
	Error *errors.APIError `json:"error"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, apiErr *errors.APIError) {
	c.JSON(statusCode, errorResponse{Error: apiErr})
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	respondWithError(c, http.StatusBadRequest, errors.NewValidationError(message))
}

// respondError maps an executor error to its status and logs server-side failures
func respondError(c *gin.Context, err error, message string) {
	status, apiErr := errors.FromDomainError(err, message)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
		)
	}
	respondWithError(c, status, apiErr)
}
