package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/passboard/internal/app/models/dto"
	"github.com/yigit/passboard/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto HTTP error responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classify(err)

	if gin.Mode() == gin.DebugMode {
		detail.WithDebugInfo("%v", err)
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

func classify(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrDatasetEmpty):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeDatasetEmpty, "No dataset has been published").
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrMalformedDataset):
		return http.StatusBadGateway, dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Dataset could not be decoded")
	case errors.Is(err, apperrors.ErrSourceUnavailable):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Data source unavailable")
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}
}
