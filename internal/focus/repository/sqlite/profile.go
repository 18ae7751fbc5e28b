package sqlite

import (
	"context"
	"database/sql"
	"errors"

	repo "focusflow/internal/focus/repository"
	"focusflow/internal/model"
	pkgSqlite "focusflow/pkg/sqlite"
)

// GetProfile reports found=false when the owner has no stored profile yet.
func (r *implRepository) GetProfile(ctx context.Context, owner string) (model.FocusProfile, bool, error) {
	const query = `
		SELECT owner, morning, afternoon, evening, observations, last_updated
		FROM focus_profiles WHERE owner = ?`

	var (
		p           model.FocusProfile
		lastUpdated string
	)
	err := r.db.QueryRowContext(ctx, query, owner).
		Scan(&p.Owner, &p.Morning, &p.Afternoon, &p.Evening, &p.Observations, &lastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return model.FocusProfile{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return model.FocusProfile{}, false, repo.ErrFailedToGet
	}
	if p.LastUpdated, err = pkgSqlite.ParseTime(lastUpdated); err != nil {
		r.l.Errorf(ctx, "%s last_updated: %v", r.dsn("GetProfile"), err)
		return model.FocusProfile{}, false, repo.ErrFailedToGet
	}
	return p, true, nil
}

// SaveProfile upserts p.
func (r *implRepository) SaveProfile(ctx context.Context, p model.FocusProfile) error {
	const query = `
		INSERT INTO focus_profiles (owner, morning, afternoon, evening, observations, last_updated)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(owner) DO UPDATE SET
			morning = excluded.morning,
			afternoon = excluded.afternoon,
			evening = excluded.evening,
			observations = excluded.observations,
			last_updated = excluded.last_updated`

	_, err := r.db.ExecContext(ctx, query,
		p.Owner, p.Morning, p.Afternoon, p.Evening, p.Observations, pkgSqlite.FormatTime(p.LastUpdated),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveProfile"), err)
		return repo.ErrFailedToSave
	}
	return nil
}
