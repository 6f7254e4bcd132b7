package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/miraclmoore/dynasty-os-sub001/model"
)

const dynastyColumns = `id, sport, team, coach, start_year, current_year, game_version, created, updated`

func (db *postgresDB) GetDynasty(ctx context.Context, id string) (*model.Dynasty, error) {
	query := fmt.Sprintf(`SELECT %s FROM dynasties WHERE id=@id`, dynastyColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	d, err := scanDynasty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDynastyNotFound
		}
		return nil, fmt.Errorf("error scanning dynasty %s: %w", id, err)
	}
	return d, nil
}

func (db *postgresDB) ListDynasties(ctx context.Context) ([]model.Dynasty, error) {
	query := fmt.Sprintf(`SELECT %s FROM dynasties ORDER BY created DESC`, dynastyColumns)

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing dynasties: %w", err)
	}
	defer rows.Close()

	results := make([]model.Dynasty, 0, 8)
	for rows.Next() {
		d, err := scanDynasty(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *d)
	}
	return results, rows.Err()
}

func (db *postgresDB) AddDynasty(ctx context.Context, d *model.Dynasty) error {
	const query = `INSERT INTO dynasties (
		id, sport, team, coach, start_year, current_year, game_version, created, updated
	) VALUES (
		@id, @sport, @team, @coach, @startYear, @currentYear, @gameVersion, @now, @now
	)`

	d.ID = db.newID()
	now := db.now()
	d.Created = now.Time
	d.Updated = now.Time

	args := pgx.NamedArgs{
		"id":          d.ID,
		"sport":       string(d.Sport),
		"team":        d.Team,
		"coach":       d.Coach,
		"startYear":   d.StartYear,
		"currentYear": d.CurrentYear,
		"gameVersion": d.GameVersion,
		"now":         now,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting dynasty: %w", err)
	}
	return nil
}

func (db *postgresDB) UpdateDynasty(ctx context.Context, d *model.Dynasty) error {
	const query = `UPDATE dynasties
		SET sport=@sport,
			team=@team,
			coach=@coach,
			start_year=@startYear,
			current_year=@currentYear,
			game_version=@gameVersion,
			updated=@updated
		WHERE id=@id`

	args := pgx.NamedArgs{
		"id":          d.ID,
		"sport":       string(d.Sport),
		"team":        d.Team,
		"coach":       d.Coach,
		"startYear":   d.StartYear,
		"currentYear": d.CurrentYear,
		"gameVersion": d.GameVersion,
		"updated":     db.now(),
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating dynasty %s: %w", d.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDynastyNotFound
	}
	return nil
}

// DeleteDynasty removes the dynasty and all of its children. The deletes are
// an explicit ordered list so that child rows always go before the rows they
// reference, all inside one transaction.
func (db *postgresDB) DeleteDynasty(ctx context.Context, id string) error {
	deletes := []string{
		`DELETE FROM games WHERE dynasty_id=@id`,
		`DELETE FROM player_seasons WHERE dynasty_id=@id`,
		`DELETE FROM players WHERE dynasty_id=@id`,
		`DELETE FROM key_moments WHERE rival_id IN (SELECT id FROM rivals WHERE dynasty_id=@id)`,
		`DELETE FROM rivals WHERE dynasty_id=@id`,
		`DELETE FROM scouting_notes WHERE dynasty_id=@id`,
		`DELETE FROM prestige_ratings WHERE dynasty_id=@id`,
		`DELETE FROM transfer_portal WHERE dynasty_id=@id`,
		`DELETE FROM seasons WHERE dynasty_id=@id`,
		`DELETE FROM dynasties WHERE id=@id`,
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"id": id}
	for _, q := range deletes {
		if _, err := tx.Exec(ctx, q, args); err != nil {
			return fmt.Errorf("error cascading dynasty delete: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing dynasty delete: %w", err)
	}
	return nil
}

func scanDynasty(row pgx.Row) (*model.Dynasty, error) {
	var result model.Dynasty
	var sport string
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&sport,
		&result.Team,
		&result.Coach,
		&result.StartYear,
		&result.CurrentYear,
		&result.GameVersion,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	result.Sport = model.ParseSport(sport)
	result.Created = created.Time
	result.Updated = updated.Time
	return &result, nil
}
