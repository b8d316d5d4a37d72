package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authusecase "resume_backend/internal/feature/auth/usecase"
	resumeusecase "resume_backend/internal/feature/resume/usecase"
)

// badRequestErrors are client mistakes: omitted input or a failed validation rule.
var badRequestErrors = []error{
	authusecase.ErrMissingFields,
	authusecase.ErrInvalidEmailFormat,
	authusecase.ErrPasswordTooShort,
	authusecase.ErrPasswordMismatch,
	authusecase.ErrMissingEmail,
	authusecase.ErrMissingPassword,
	resumeusecase.ErrMissingTitle,
	resumeusecase.ErrMissingContent,
	resumeusecase.ErrContentTooShort,
	resumeusecase.ErrNothingToUpdate,
}

// notFoundErrors cover both a truly absent resource and one owned by another
// account. The two cases must stay indistinguishable.
var notFoundErrors = []error{
	authusecase.ErrAccountNotFound,
	resumeusecase.ErrResumeNotFound,
}

// HandleError writes the HTTP response for a failed operation.
// Classified errors keep their own message; anything unclassified is reported
// as a generic internal error and logged with the real cause.
func HandleError(c *gin.Context, err error) {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
	}
	if errors.Is(err, authusecase.ErrEmailAlreadyExists) {
		c.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
		return
	}
	if errors.Is(err, authusecase.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: err.Error()})
		return
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
			return
		}
	}

	slog.Error("unhandled error", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
}
