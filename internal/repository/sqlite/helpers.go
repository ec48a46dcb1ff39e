package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
)

// Helpers shared across repository implementations

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

func componentLogger(ctx context.Context, name string) zerolog.Logger {
	return zerolog.Ctx(ctx).With().Str("component", name).Logger()
}

func tx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	log := componentLogger(ctx, "repo")
	t, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")
		return err
	}
	if err := fn(t); err != nil {
		_ = t.Rollback()
		log.Debug().Err(err).Msg("transaction rolled back")
		return err
	}
	if err := t.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")
		return err
	}
	return nil
}
