package http

import (
	"errors"
	"net/http"

	"github.com/jdcruz/rbi-registry/internal/service"
	"github.com/jdcruz/rbi-registry/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrValidationFailed:        http.StatusUnprocessableEntity,

	store.ErrLoginAlreadyExists:       http.StatusConflict,
	store.ErrNoEncoderWasFound:        http.StatusNotFound,
	store.ErrResidentNotFound:         http.StatusNotFound,
	store.ErrHouseholdNotFound:        http.StatusNotFound,
	store.ErrDuplicatePhilSysNumber:   http.StatusConflict,
	store.ErrDuplicateHouseholdNumber: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
