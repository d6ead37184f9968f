package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/blackbird-crm/crm-api/internal/api/shared"
	"github.com/blackbird-crm/crm-api/internal/service"
	"github.com/blackbird-crm/crm-api/internal/service/auth"
	"github.com/blackbird-crm/crm-api/internal/store"
)

// MapErrorToStatusCode translates internal errors to HTTP status codes.
// Anything unrecognized is treated as an internal error.
func MapErrorToStatusCode(err error) int {
	var missingRef *service.MissingReferenceError
	var validationErrs validator.ValidationErrors

	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidClientID),
		errors.Is(err, service.ErrProjectClientMismatch):
		return http.StatusBadRequest
	case errors.As(err, &missingRef):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a message safe to expose to clients. Internal
// details never leak; only validation failures carry specifics.
func GetSafeErrorMessage(err error) string {
	var missingRef *service.MissingReferenceError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, store.ErrClientNotFound):
		return "Client not found"
	case errors.Is(err, store.ErrProjectNotFound):
		return "Project not found"
	case errors.Is(err, store.ErrCommentNotFound):
		return "Comment not found"
	case errors.Is(err, store.ErrTransactionNotFound):
		return "Transaction not found"
	case store.IsNotFoundError(err):
		return "Resource not found"
	case errors.Is(err, store.ErrEmailExists):
		return "User already exists"
	case errors.Is(err, service.ErrInvalidClientID):
		return "Invalid client ID."
	case errors.Is(err, service.ErrProjectClientMismatch):
		return "Invalid project ID or the project does not belong to the client."
	case errors.As(err, &missingRef):
		return missingRef.Error()
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.As(err, &validationErrs):
		return "Invalid request"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken):
		return "Invalid token"
	default:
		return "An unexpected error occurred"
	}
}

// respondWithMappedError maps err to a status and safe message, logging the
// underlying error server-side.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
