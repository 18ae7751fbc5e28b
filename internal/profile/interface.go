package profile

import (
	"context"

	"focusflow/internal/model"
)

// Repository persists focus profiles.
type Repository interface {
	// GetProfile returns the stored profile and whether one exists.
	GetProfile(ctx context.Context, owner string) (model.FocusProfile, bool, error)
	SaveProfile(ctx context.Context, p model.FocusProfile) error
}
