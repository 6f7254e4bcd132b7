package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/miraclmoore/dynasty-os-sub001/model"
)

// ImportDynasty inserts an exported dynasty and all of its children under
// fresh ids. Every old id is remapped through one table so the foreign keys
// inside the bundle keep pointing at the right rows. Everything happens in
// a single transaction; a bad bundle leaves nothing behind.
func (db *postgresDB) ImportDynasty(ctx context.Context, bundle *model.DynastyExport) (string, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	now := db.now()
	idMap := make(map[string]string)
	remap := func(oldID string) string {
		if newID, ok := idMap[oldID]; ok {
			return newID
		}
		newID := db.newID()
		idMap[oldID] = newID
		return newID
	}

	dynastyID := remap(bundle.Dynasty.ID)
	_, err = tx.Exec(ctx, `INSERT INTO dynasties (
			id, sport, team, coach, start_year, current_year, game_version, created, updated
		) VALUES (@id, @sport, @team, @coach, @startYear, @currentYear, @gameVersion, @now, @now)`,
		pgx.NamedArgs{
			"id":          dynastyID,
			"sport":       string(bundle.Dynasty.Sport),
			"team":        bundle.Dynasty.Team,
			"coach":       bundle.Dynasty.Coach,
			"startYear":   bundle.Dynasty.StartYear,
			"currentYear": bundle.Dynasty.CurrentYear,
			"gameVersion": bundle.Dynasty.GameVersion,
			"now":         now,
		})
	if err != nil {
		return "", fmt.Errorf("error importing dynasty: %w", err)
	}

	for _, s := range bundle.Seasons {
		args := namedArgsForSeason(&s)
		args["id"] = remap(s.ID)
		args["dynastyID"] = dynastyID
		args["now"] = now
		_, err = tx.Exec(ctx, `INSERT INTO seasons (
				id, dynasty_id, year, wins, losses, conf_wins, conf_losses,
				final_ranking, bowl_game, bowl_result, playoff_result, notes, created, updated
			) VALUES (@id, @dynastyID, @year, @wins, @losses, @confWins, @confLosses,
				@finalRanking, @bowlGame, @bowlResult, @playoffResult, @notes, @now, @now)`, args)
		if err != nil {
			return "", fmt.Errorf("error importing season %d: %w", s.Year, err)
		}
	}

	for _, g := range bundle.Games {
		args := namedArgsForGame(&g)
		args["id"] = remap(g.ID)
		args["dynastyID"] = dynastyID
		args["seasonID"] = remap(g.SeasonID)
		args["now"] = now
		_, err = tx.Exec(ctx, `INSERT INTO games (
				id, dynasty_id, season_id, week, opponent, team_score, opponent_score,
				result, location, game_type, overtime, created, updated
			) VALUES (@id, @dynastyID, @seasonID, @week, @opponent, @teamScore, @opponentScore,
				@result, @location, @gameType, @overtime, @now, @now)`, args)
		if err != nil {
			return "", fmt.Errorf("error importing game vs %s: %w", g.Opponent, err)
		}
	}

	for _, p := range bundle.Players {
		_, err = tx.Exec(ctx, `INSERT INTO players (
				id, dynasty_id, name_first, name_last, position, status, created, updated
			) VALUES (@id, @dynastyID, @nameFirst, @nameLast, @position, @status, @now, @now)`,
			pgx.NamedArgs{
				"id":        remap(p.ID),
				"dynastyID": dynastyID,
				"nameFirst": p.FirstName,
				"nameLast":  p.LastName,
				"position":  p.Position,
				"status":    string(p.Status),
				"now":       now,
			})
		if err != nil {
			return "", fmt.Errorf("error importing player %s: %w", p.FullName(), err)
		}
	}

	for _, ps := range bundle.Stats {
		_, err = tx.Exec(ctx, `INSERT INTO player_seasons (
				id, dynasty_id, player_id, season_id, stats, created, updated
			) VALUES (@id, @dynastyID, @playerID, @seasonID, @stats, @now, @now)`,
			pgx.NamedArgs{
				"id":        remap(ps.ID),
				"dynastyID": dynastyID,
				"playerID":  remap(ps.PlayerID),
				"seasonID":  remap(ps.SeasonID),
				"stats":     ps.Stats,
				"now":       now,
			})
		if err != nil {
			return "", fmt.Errorf("error importing player season: %w", err)
		}
	}

	for _, r := range bundle.Rivals {
		_, err = tx.Exec(ctx, `INSERT INTO rivals (
				id, dynasty_id, opponent, label, created, updated
			) VALUES (@id, @dynastyID, @opponent, @label, @now, @now)`,
			pgx.NamedArgs{
				"id":        remap(r.ID),
				"dynastyID": dynastyID,
				"opponent":  r.Opponent,
				"label":     r.Label,
				"now":       now,
			})
		if err != nil {
			return "", fmt.Errorf("error importing rival %s: %w", r.Opponent, err)
		}
	}

	for _, m := range bundle.Moments {
		_, err = tx.Exec(ctx, `INSERT INTO key_moments (
				id, rival_id, year, description, created, updated
			) VALUES (@id, @rivalID, @year, @description, @now, @now)`,
			pgx.NamedArgs{
				"id":          remap(m.ID),
				"rivalID":     remap(m.RivalID),
				"year":        m.Year,
				"description": m.Description,
				"now":         now,
			})
		if err != nil {
			return "", fmt.Errorf("error importing key moment: %w", err)
		}
	}

	for _, n := range bundle.Notes {
		_, err = tx.Exec(ctx, `INSERT INTO scouting_notes (
				id, dynasty_id, opponent, note, created, updated
			) VALUES (@id, @dynastyID, @opponent, @note, @now, @now)`,
			pgx.NamedArgs{
				"id":        remap(n.ID),
				"dynastyID": dynastyID,
				"opponent":  n.Opponent,
				"note":      n.Note,
				"now":       now,
			})
		if err != nil {
			return "", fmt.Errorf("error importing scouting note: %w", err)
		}
	}

	for _, p := range bundle.Prestige {
		_, err = tx.Exec(ctx, `INSERT INTO prestige_ratings (
				id, dynasty_id, year, rating, recruiting_rank, created, updated
			) VALUES (@id, @dynastyID, @year, @rating, @recruitingRank, @now, @now)`,
			pgx.NamedArgs{
				"id":             remap(p.ID),
				"dynastyID":      dynastyID,
				"year":           p.Year,
				"rating":         p.Rating,
				"recruitingRank": nullInt(p.RecruitingRank),
				"now":            now,
			})
		if err != nil {
			return "", fmt.Errorf("error importing prestige rating: %w", err)
		}
	}

	for _, t := range bundle.Portal {
		_, err = tx.Exec(ctx, `INSERT INTO transfer_portal (
				id, dynasty_id, season_id, player_name, position, entry_type, star_rating, school, created, updated
			) VALUES (@id, @dynastyID, @seasonID, @playerName, @position, @entryType, @starRating, @school, @now, @now)`,
			pgx.NamedArgs{
				"id":         remap(t.ID),
				"dynastyID":  dynastyID,
				"seasonID":   remap(t.SeasonID),
				"playerName": t.PlayerName,
				"position":   t.Position,
				"entryType":  string(t.EntryType),
				"starRating": nullInt(t.StarRating),
				"school":     t.School,
				"now":        now,
			})
		if err != nil {
			return "", fmt.Errorf("error importing transfer: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("error committing import: %w", err)
	}
	return dynastyID, nil
}
