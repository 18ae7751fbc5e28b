package http

import (
	"errors"
	"net/http"

	"focusflow/internal/focus"
	"focusflow/internal/task"
	pkgErrors "focusflow/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, focus.ErrInvalidScore),
		errors.Is(err, focus.ErrInvalidDuration):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, focus.ErrSessionNotFound),
		errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, focus.ErrSessionActive),
		errors.Is(err, focus.ErrSessionNotActive),
		errors.Is(err, task.ErrTaskCompleted):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
