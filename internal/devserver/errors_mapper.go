package devserver

import (
	"errors"
	"net/http"
)

var errorStatusMap = map[error]int{
	ErrInvalidRequest: http.StatusBadRequest,
	ErrUnknownVault:   http.StatusNotFound,
	ErrUnknownAlias:   http.StatusNotFound,
	ErrWrongPasskey:   http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
