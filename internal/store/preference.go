package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// KeyKidMode is the preference key for the simplified study view.
const KeyKidMode = "kid_mode"

// PreferenceRepo persists user preferences.
type PreferenceRepo interface {
	// KidMode reports whether kid mode is on. It is on until the user
	// turns it off.
	KidMode(ctx context.Context) (bool, error)

	// SetKidMode stores the kid mode flag.
	SetKidMode(ctx context.Context, on bool) error
}

type preferenceRepo struct {
	db *sql.DB
}

func (r *preferenceRepo) KidMode(ctx context.Context) (bool, error) {
	v, ok, err := r.get(ctx, KeyKidMode)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	on, err := strconv.ParseBool(v)
	if err != nil {
		return true, nil
	}
	return on, nil
}

func (r *preferenceRepo) SetKidMode(ctx context.Context, on bool) error {
	return r.set(ctx, KeyKidMode, strconv.FormatBool(on))
}

func (r *preferenceRepo) get(ctx context.Context, key string) (string, bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("value").
		From(entsql.Table(preferencesTable)).
		Where(entsql.EQ("key", key)).
		Query()

	var v string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %s: %w", key, err)
	}
	return v, true, nil
}

func (r *preferenceRepo) set(ctx context.Context, key, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(preferencesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}
