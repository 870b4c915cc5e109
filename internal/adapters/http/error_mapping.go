package httpadapter

import (
	"net/http"

	"github.com/studypdf/studypdf/internal/core/domain"
)

// mapErrorToHTTPStatus translates domain error kinds into status codes.
// ErrTemporary is checked before ErrGeneration: a retryable provider
// failure carries both kinds and must surface as 503.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidConfiguration),
		domain.IsKind(err, domain.ErrUnsupportedMode),
		domain.IsKind(err, domain.ErrEmptyDocument),
		domain.IsKind(err, domain.ErrInvalidDocument),
		domain.IsKind(err, domain.ErrBudgetTooSmall):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrExtraction):
		return http.StatusUnprocessableEntity
	case domain.IsKind(err, domain.ErrTimeout):
		return http.StatusGatewayTimeout
	case domain.IsKind(err, domain.ErrTemporary):
		return http.StatusServiceUnavailable
	case domain.IsKind(err, domain.ErrGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
