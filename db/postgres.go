package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrDynastyNotFound error = errors.New("dynasty not found")
	ErrSeasonNotFound  error = errors.New("season not found")
	ErrGameNotFound    error = errors.New("game not found")
	ErrPlayerNotFound  error = errors.New("player not found")
	ErrRivalNotFound   error = errors.New("rival not found")
	ErrNotFound        error = errors.New("record not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) newID() string {
	return uuid.NewString()
}

func (db *postgresDB) now() pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             db.clock.Now().UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

func intOrNil(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int32)
	return &n
}
