package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/miraclmoore/dynasty-os-sub001/model"
)

const gameColumns = `id, dynasty_id, season_id, week, opponent, team_score,
	opponent_score, result, location, game_type, overtime, created, updated`

func (db *postgresDB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	query := fmt.Sprintf(`SELECT %s FROM games WHERE id=@id`, gameColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	g, err := scanGame(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error scanning game %s: %w", id, err)
	}
	return g, nil
}

func (db *postgresDB) ListSeasonGames(ctx context.Context, seasonID string) ([]model.Game, error) {
	query := fmt.Sprintf(`SELECT %s FROM games WHERE season_id=@seasonID ORDER BY week`, gameColumns)
	return db.queryGames(ctx, query, pgx.NamedArgs{"seasonID": seasonID})
}

func (db *postgresDB) ListDynastyGames(ctx context.Context, dynastyID string) ([]model.Game, error) {
	query := fmt.Sprintf(`SELECT %s FROM games WHERE dynasty_id=@dynastyID ORDER BY created`, gameColumns)
	return db.queryGames(ctx, query, pgx.NamedArgs{"dynastyID": dynastyID})
}

func (db *postgresDB) queryGames(ctx context.Context, query string, args pgx.NamedArgs) ([]model.Game, error) {
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}
	defer rows.Close()

	results := make([]model.Game, 0, 16)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *g)
	}
	return results, rows.Err()
}

func (db *postgresDB) AddGame(ctx context.Context, g *model.Game) error {
	const query = `INSERT INTO games (
		id, dynasty_id, season_id, week, opponent, team_score, opponent_score,
		result, location, game_type, overtime, created, updated
	) VALUES (
		@id, @dynastyID, @seasonID, @week, @opponent, @teamScore, @opponentScore,
		@result, @location, @gameType, @overtime, @now, @now
	)`

	g.ID = db.newID()
	now := db.now()
	g.Created = now.Time
	g.Updated = now.Time

	args := namedArgsForGame(g)
	args["now"] = now
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting game: %w", err)
	}
	return nil
}

func (db *postgresDB) UpdateGame(ctx context.Context, g *model.Game) error {
	const query = `UPDATE games
		SET week=@week,
			opponent=@opponent,
			team_score=@teamScore,
			opponent_score=@opponentScore,
			result=@result,
			location=@location,
			game_type=@gameType,
			overtime=@overtime,
			updated=@updated
		WHERE id=@id`

	args := namedArgsForGame(g)
	args["updated"] = db.now()
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating game %s: %w", g.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (db *postgresDB) DeleteGame(ctx context.Context, id string) error {
	const query = `DELETE FROM games WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting game %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}

func namedArgsForGame(g *model.Game) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":            g.ID,
		"dynastyID":     g.DynastyID,
		"seasonID":      g.SeasonID,
		"week":          g.Week,
		"opponent":      g.Opponent,
		"teamScore":     g.TeamScore,
		"opponentScore": g.OpponentScore,
		"result":        string(g.Result),
		"location":      string(g.Location),
		"gameType":      string(g.GameType),
		"overtime":      g.Overtime,
	}
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var result model.Game
	var res, loc, gameType string
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.DynastyID,
		&result.SeasonID,
		&result.Week,
		&result.Opponent,
		&result.TeamScore,
		&result.OpponentScore,
		&res,
		&loc,
		&gameType,
		&result.Overtime,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	result.Result = model.ParseResult(res)
	result.Location = model.ParseLocation(loc)
	result.GameType = model.ParseGameType(gameType)
	result.Created = created.Time
	result.Updated = updated.Time
	return &result, nil
}
