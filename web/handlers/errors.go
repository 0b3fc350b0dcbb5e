package handlers

import (
	"net/http"

	apperrors "research-graph/errors"
	"research-graph/web/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const notFoundMessage = "Paper with specified ID not found"

// respondWithError logs the technical error and returns a user-friendly message
func respondWithError(c *gin.Context, statusCode int, technicalError error, userMessage string, logger *zap.Logger, fields ...zap.Field) {
	// Log technical error with context
	if logger != nil {
		fields = append(fields, zap.Error(technicalError), zap.String("path", c.FullPath()))
		logger.Error("Request failed", fields...)
	}

	c.JSON(statusCode, types.ErrorResponse{Error: "Internal server error", Message: userMessage})
}

// respondWithClientError returns a client error (no logging needed for validation errors)
func respondWithClientError(c *gin.Context, statusCode int, errorText, userMessage string) {
	c.JSON(statusCode, types.ErrorResponse{Error: errorText, Message: userMessage})
}

// respondWithServiceError maps a service error onto the API error contract.
// op names the endpoint in the generic 500 message.
func respondWithServiceError(c *gin.Context, err error, op string, logger *zap.Logger, fields ...zap.Field) {
	switch {
	case apperrors.IsInvalidInput(err):
		respondWithClientError(c, http.StatusBadRequest, "Invalid request", apperrors.ClientMessage(err))
	case apperrors.IsNotFound(err):
		if logger != nil {
			logger.Warn("Paper not found", append(fields, zap.Error(err))...)
		}
		respondWithClientError(c, http.StatusNotFound, "Not found", notFoundMessage)
	default:
		if apperrors.IsServiceUnavailable(err) {
			fields = append(fields, zap.Bool("upstream_unavailable", true))
		}
		respondWithError(c, http.StatusInternalServerError, err, "Failed to process "+op+" request", logger, fields...)
	}
}
