package http

import (
	"errors"

	"mutual-availability/internal/preference"
	pkgErrors "mutual-availability/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, preference.ErrInvalidWindow),
		errors.Is(err, preference.ErrInvalidWeekday):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, preference.ErrCommitmentNotFound):
		return pkgErrors.NewHTTPError(404, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "could not complete the request")
	}
}
