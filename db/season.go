package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/miraclmoore/dynasty-os-sub001/model"
)

const seasonColumns = `id, dynasty_id, year, wins, losses, conf_wins, conf_losses,
	final_ranking, bowl_game, bowl_result, playoff_result, notes, created, updated`

func (db *postgresDB) GetSeason(ctx context.Context, id string) (*model.Season, error) {
	query := fmt.Sprintf(`SELECT %s FROM seasons WHERE id=@id`, seasonColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	s, err := scanSeason(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSeasonNotFound
		}
		return nil, fmt.Errorf("error scanning season %s: %w", id, err)
	}
	return s, nil
}

func (db *postgresDB) ListSeasons(ctx context.Context, dynastyID string) ([]model.Season, error) {
	query := fmt.Sprintf(`SELECT %s FROM seasons WHERE dynasty_id=@dynastyID ORDER BY year DESC`, seasonColumns)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"dynastyID": dynastyID})
	if err != nil {
		return nil, fmt.Errorf("error listing seasons: %w", err)
	}
	defer rows.Close()

	results := make([]model.Season, 0, 8)
	for rows.Next() {
		s, err := scanSeason(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *s)
	}
	return results, rows.Err()
}

func (db *postgresDB) AddSeason(ctx context.Context, s *model.Season) error {
	const query = `INSERT INTO seasons (
		id, dynasty_id, year, wins, losses, conf_wins, conf_losses,
		final_ranking, bowl_game, bowl_result, playoff_result, notes, created, updated
	) VALUES (
		@id, @dynastyID, @year, @wins, @losses, @confWins, @confLosses,
		@finalRanking, @bowlGame, @bowlResult, @playoffResult, @notes, @now, @now
	)`

	s.ID = db.newID()
	now := db.now()
	s.Created = now.Time
	s.Updated = now.Time

	args := namedArgsForSeason(s)
	args["now"] = now
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting season: %w", err)
	}
	return nil
}

func (db *postgresDB) UpdateSeason(ctx context.Context, s *model.Season) error {
	const query = `UPDATE seasons
		SET year=@year,
			wins=@wins,
			losses=@losses,
			conf_wins=@confWins,
			conf_losses=@confLosses,
			final_ranking=@finalRanking,
			bowl_game=@bowlGame,
			bowl_result=@bowlResult,
			playoff_result=@playoffResult,
			notes=@notes,
			updated=@updated
		WHERE id=@id`

	args := namedArgsForSeason(s)
	args["updated"] = db.now()
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating season %s: %w", s.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSeasonNotFound
	}
	return nil
}

func (db *postgresDB) UpdateSeasonRecord(ctx context.Context, id string, wins, losses, confWins, confLosses int) error {
	const query = `UPDATE seasons
		SET wins=@wins,
			losses=@losses,
			conf_wins=@confWins,
			conf_losses=@confLosses,
			updated=@updated
		WHERE id=@id`

	args := pgx.NamedArgs{
		"id":         id,
		"wins":       wins,
		"losses":     losses,
		"confWins":   confWins,
		"confLosses": confLosses,
		"updated":    db.now(),
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating season record %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSeasonNotFound
	}
	return nil
}

func (db *postgresDB) DeleteSeason(ctx context.Context, id string) error {
	deletes := []string{
		`DELETE FROM games WHERE season_id=@id`,
		`DELETE FROM player_seasons WHERE season_id=@id`,
		`DELETE FROM transfer_portal WHERE season_id=@id`,
		`DELETE FROM seasons WHERE id=@id`,
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"id": id}
	for _, q := range deletes {
		if _, err := tx.Exec(ctx, q, args); err != nil {
			return fmt.Errorf("error cascading season delete: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func namedArgsForSeason(s *model.Season) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":            s.ID,
		"dynastyID":     s.DynastyID,
		"year":          s.Year,
		"wins":          s.Wins,
		"losses":        s.Losses,
		"confWins":      s.ConfWins,
		"confLosses":    s.ConfLosses,
		"finalRanking":  nullInt(s.FinalRanking),
		"bowlGame":      nullString(s.BowlGame),
		"bowlResult":    nullString(s.BowlResult),
		"playoffResult": nullString(s.PlayoffResult),
		"notes":         nullString(s.Notes),
	}
}

func scanSeason(row pgx.Row) (*model.Season, error) {
	var result model.Season
	var finalRanking sql.NullInt32
	var bowlGame, bowlResult, playoffResult, notes sql.NullString
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.DynastyID,
		&result.Year,
		&result.Wins,
		&result.Losses,
		&result.ConfWins,
		&result.ConfLosses,
		&finalRanking,
		&bowlGame,
		&bowlResult,
		&playoffResult,
		&notes,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	result.FinalRanking = intOrNil(finalRanking)
	result.BowlGame = valueOrEmpty(bowlGame)
	result.BowlResult = valueOrEmpty(bowlResult)
	result.PlayoffResult = valueOrEmpty(playoffResult)
	result.Notes = valueOrEmpty(notes)
	result.Created = created.Time
	result.Updated = updated.Time
	return &result, nil
}
