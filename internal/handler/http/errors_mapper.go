package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSONBody:     http.StatusBadRequest,
	ErrInvalidURLParameter: http.StatusBadRequest,

	service.ErrUserFieldsIncorrect:          http.StatusBadRequest,
	service.ErrProductFieldsIncorrect:       http.StatusBadRequest,
	service.ErrOrderFieldsIncorrect:         http.StatusBadRequest,
	service.ErrCompleteOrderFieldsIncorrect: http.StatusBadRequest,
	service.ErrPasswordIncorrect:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:      http.StatusUnauthorized,
	service.ErrTokenCreationFailed:          http.StatusInternalServerError,

	store.ErrUserNotFound:                http.StatusNotFound,
	store.ErrUserAlreadyExists:           http.StatusConflict,
	store.ErrProductNotFound:             http.StatusNotFound,
	store.ErrOrderNotFound:               http.StatusNotFound,
	store.ErrUserOrdersNotFound:          http.StatusNotFound,
	store.ErrUserActiveOrdersNotFound:    http.StatusNotFound,
	store.ErrUserCompletedOrdersNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrDatabase:             http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes it to the response as a JSON-encoded string
// with the status mapped by errorStatusMap. Unmapped errors become 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	log.Err(err).Int("status", status).Str("uri", r.RequestURI).Msg("request failed")

	if _, writeErr := utils.WriteJSON(w, err.Error(), status); writeErr != nil {
		log.Err(writeErr).Msg("failed to write error response")
	}
}
