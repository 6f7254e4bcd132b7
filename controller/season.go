package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/miraclmoore/dynasty-os-sub001/db"
	"github.com/miraclmoore/dynasty-os-sub001/model"
)

func (c *controller) CreateSeason(ctx context.Context, s *model.Season) (*model.Season, error) {
	if _, err := c.db.GetDynasty(ctx, s.DynastyID); err != nil {
		return nil, fmt.Errorf("error looking up dynasty: %w", err)
	}
	if s.Year <= 0 {
		return nil, fmt.Errorf("season year must be positive, got %d", s.Year)
	}

	// A fresh season has no games, so the record starts at zero.
	s.Wins = 0
	s.Losses = 0
	s.ConfWins = 0
	s.ConfLosses = 0

	if err := c.db.AddSeason(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *controller) GetSeason(ctx context.Context, id string) (*model.Season, error) {
	return c.db.GetSeason(ctx, id)
}

func (c *controller) ListSeasons(ctx context.Context, dynastyID string) ([]model.Season, error) {
	return c.db.ListSeasons(ctx, dynastyID)
}

func (c *controller) UpdateSeason(ctx context.Context, s *model.Season) (*model.Season, error) {
	existing, err := c.db.GetSeason(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("error looking up season: %w", err)
	}

	// The record fields are derived from games; carry the stored values
	// through no matter what the caller sent.
	s.DynastyID = existing.DynastyID
	s.Wins = existing.Wins
	s.Losses = existing.Losses
	s.ConfWins = existing.ConfWins
	s.ConfLosses = existing.ConfLosses

	if err := c.db.UpdateSeason(ctx, s); err != nil {
		return nil, err
	}
	return c.db.GetSeason(ctx, s.ID)
}

func (c *controller) DeleteSeason(ctx context.Context, id string) error {
	if _, err := c.db.GetSeason(ctx, id); err != nil {
		return fmt.Errorf("error looking up season: %w", err)
	}
	return c.db.DeleteSeason(ctx, id)
}

// recalculateSeasonRecord recomputes the season's win/loss and conference
// splits from its games and persists them. Runs synchronously after every
// game mutation. A missing season is a no-op so that deleting the last game
// of an already-deleted season doesn't fail.
func (c *controller) recalculateSeasonRecord(ctx context.Context, seasonID string) error {
	if _, err := c.db.GetSeason(ctx, seasonID); err != nil {
		if errors.Is(err, db.ErrSeasonNotFound) {
			return nil
		}
		return fmt.Errorf("error looking up season for record recalculation: %w", err)
	}

	games, err := c.db.ListSeasonGames(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("error loading games for season %s: %w", seasonID, err)
	}

	wins, losses, confWins, confLosses := tallyRecord(games)
	return c.db.UpdateSeasonRecord(ctx, seasonID, wins, losses, confWins, confLosses)
}

// tallyRecord counts wins and losses across games. Ties count in neither
// column; the conference splits only look at conference games.
func tallyRecord(games []model.Game) (wins, losses, confWins, confLosses int) {
	for _, g := range games {
		switch g.Result {
		case model.RESULT_WIN:
			wins++
			if g.GameType == model.GAME_CONFERENCE {
				confWins++
			}
		case model.RESULT_LOSS:
			losses++
			if g.GameType == model.GAME_CONFERENCE {
				confLosses++
			}
		}
	}
	return wins, losses, confWins, confLosses
}
