package http

import (
	"errors"

	"mutual-availability/internal/availability"
	pkgErrors "mutual-availability/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unmapped errors become a generic 500 so provider failures never leak
// backend details to clients.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, availability.ErrInvalidRange),
		errors.Is(err, availability.ErrInvalidDuration):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, availability.ErrSubjectNotFound):
		return pkgErrors.NewHTTPError(404, err.Error())
	case errors.Is(err, availability.ErrProviderWriteOnly):
		return pkgErrors.NewHTTPError(422, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "could not complete the request")
	}
}
