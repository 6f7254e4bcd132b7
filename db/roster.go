package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/miraclmoore/dynasty-os-sub001/model"
)

const playerColumns = `id, dynasty_id, name_first, name_last, position, status, created, updated`

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players WHERE id=@id`, playerColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	p, err := scanRosterPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %s: %w", id, err)
	}
	return p, nil
}

func (db *postgresDB) ListPlayers(ctx context.Context, dynastyID string) ([]model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players WHERE dynasty_id=@dynastyID ORDER BY name_last, name_first`, playerColumns)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"dynastyID": dynastyID})
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	defer rows.Close()

	results := make([]model.Player, 0, 16)
	for rows.Next() {
		p, err := scanRosterPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	return results, rows.Err()
}

func (db *postgresDB) AddPlayer(ctx context.Context, p *model.Player) error {
	const query = `INSERT INTO players (
		id, dynasty_id, name_first, name_last, position, status, created, updated
	) VALUES (
		@id, @dynastyID, @nameFirst, @nameLast, @position, @status, @now, @now
	)`

	p.ID = db.newID()
	now := db.now()
	p.Created = now.Time
	p.Updated = now.Time

	args := pgx.NamedArgs{
		"id":        p.ID,
		"dynastyID": p.DynastyID,
		"nameFirst": p.FirstName,
		"nameLast":  p.LastName,
		"position":  p.Position,
		"status":    string(p.Status),
		"now":       now,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting player: %w", err)
	}
	return nil
}

func (db *postgresDB) UpdatePlayer(ctx context.Context, p *model.Player) error {
	const query = `UPDATE players
		SET name_first=@nameFirst,
			name_last=@nameLast,
			position=@position,
			status=@status,
			updated=@updated
		WHERE id=@id`

	args := pgx.NamedArgs{
		"id":        p.ID,
		"nameFirst": p.FirstName,
		"nameLast":  p.LastName,
		"position":  p.Position,
		"status":    string(p.Status),
		"updated":   db.now(),
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating player %s: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (db *postgresDB) DeletePlayer(ctx context.Context, id string) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"id": id}
	if _, err := tx.Exec(ctx, `DELETE FROM player_seasons WHERE player_id=@id`, args); err != nil {
		return fmt.Errorf("error deleting player stat lines: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM players WHERE id=@id`, args)
	if err != nil {
		return fmt.Errorf("error deleting player %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return tx.Commit(ctx)
}

const playerSeasonColumns = `id, dynasty_id, player_id, season_id, stats, created, updated`

func (db *postgresDB) SavePlayerSeason(ctx context.Context, ps *model.PlayerSeason) error {
	const query = `INSERT INTO player_seasons (
		id, dynasty_id, player_id, season_id, stats, created, updated
	) VALUES (
		@id, @dynastyID, @playerID, @seasonID, @stats, @now, @now
	)
	ON CONFLICT (player_id, season_id)
		DO UPDATE SET stats=EXCLUDED.stats, updated=EXCLUDED.updated`

	if ps.ID == "" {
		ps.ID = db.newID()
	}
	now := db.now()

	args := pgx.NamedArgs{
		"id":        ps.ID,
		"dynastyID": ps.DynastyID,
		"playerID":  ps.PlayerID,
		"seasonID":  ps.SeasonID,
		"stats":     ps.Stats,
		"now":       now,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving player season: %w", err)
	}
	return nil
}

func (db *postgresDB) ListDynastyPlayerSeasons(ctx context.Context, dynastyID string) ([]model.PlayerSeason, error) {
	query := fmt.Sprintf(`SELECT %s FROM player_seasons WHERE dynasty_id=@dynastyID ORDER BY created`, playerSeasonColumns)
	return db.queryPlayerSeasons(ctx, query, pgx.NamedArgs{"dynastyID": dynastyID})
}

func (db *postgresDB) ListSeasonPlayerSeasons(ctx context.Context, seasonID string) ([]model.PlayerSeason, error) {
	query := fmt.Sprintf(`SELECT %s FROM player_seasons WHERE season_id=@seasonID ORDER BY created`, playerSeasonColumns)
	return db.queryPlayerSeasons(ctx, query, pgx.NamedArgs{"seasonID": seasonID})
}

func (db *postgresDB) queryPlayerSeasons(ctx context.Context, query string, args pgx.NamedArgs) ([]model.PlayerSeason, error) {
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing player seasons: %w", err)
	}
	defer rows.Close()

	results := make([]model.PlayerSeason, 0, 16)
	for rows.Next() {
		ps, err := scanPlayerSeason(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *ps)
	}
	return results, rows.Err()
}

func (db *postgresDB) DeletePlayerSeason(ctx context.Context, id string) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM player_seasons WHERE id=@id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting player season %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRosterPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var status string
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.DynastyID,
		&result.FirstName,
		&result.LastName,
		&result.Position,
		&status,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	result.Status = model.ParsePlayerStatus(status)
	result.Created = created.Time
	result.Updated = updated.Time
	return &result, nil
}

func scanPlayerSeason(row pgx.Row) (*model.PlayerSeason, error) {
	var result model.PlayerSeason
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.DynastyID,
		&result.PlayerID,
		&result.SeasonID,
		&result.Stats,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	result.Created = created.Time
	result.Updated = updated.Time
	return &result, nil
}
