package http

import (
	"errors"
	"net/http"

	"focusflow/internal/task"
	pkgErrors "focusflow/pkg/errors"
)

var (
	errIDRequired    = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidDueAt  = pkgErrors.NewHTTPError(http.StatusBadRequest, "due_at must be RFC 3339")
	errNothingToSave = pkgErrors.NewHTTPError(http.StatusBadRequest, "no fields to update")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidTaskType),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidDuration):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrTaskCompleted):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
