package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-food-keeper/internal/logger"
	"github.com/MKhiriev/go-food-keeper/internal/service"
	"github.com/MKhiriev/go-food-keeper/internal/validators"
	"github.com/MKhiriev/go-food-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidFood:             http.StatusBadRequest,
	service.ErrInvalidBarcode:          http.StatusBadRequest,
	service.ErrFoodNotFound:            http.StatusNotFound,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrDuplicateBarcode:        http.StatusConflict,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrStorage:                 http.StatusInternalServerError,

	ErrInvalidQueryParam: http.StatusBadRequest,
	ErrInvalidJSON:       http.StatusBadRequest,
	ErrNoUserID:          http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Server errors are
// reported with the generic status text so storage details do not leak.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		writeJSONError(w, r, service.ErrInvalidFood.Error(), status, fieldErrs)
		return
	}

	writeJSONError(w, r, message, status, nil)
}

func writeJSONError(w http.ResponseWriter, r *http.Request, message string, status int, fields map[string]string) {
	writeJSON(w, r, models.ErrorResponse{Error: message, Fields: fields}, status)
}
