package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/miraclmoore/dynasty-os-sub001/model"
)

func (c *controller) CreateGame(ctx context.Context, g *model.Game) (*model.Game, error) {
	s, err := c.db.GetSeason(ctx, g.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("error looking up season: %w", err)
	}
	g.DynastyID = s.DynastyID

	if err := validateGame(g); err != nil {
		return nil, err
	}

	if err := c.db.AddGame(ctx, g); err != nil {
		return nil, err
	}
	if err := c.recalculateSeasonRecord(ctx, g.SeasonID); err != nil {
		return nil, err
	}
	return g, nil
}

func (c *controller) GetGame(ctx context.Context, id string) (*model.Game, error) {
	return c.db.GetGame(ctx, id)
}

func (c *controller) ListGames(ctx context.Context, seasonID string) ([]model.Game, error) {
	return c.db.ListSeasonGames(ctx, seasonID)
}

func (c *controller) UpdateGame(ctx context.Context, g *model.Game) (*model.Game, error) {
	existing, err := c.db.GetGame(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("error looking up game: %w", err)
	}

	// Games never move between seasons.
	g.SeasonID = existing.SeasonID
	g.DynastyID = existing.DynastyID

	if err := validateGame(g); err != nil {
		return nil, err
	}

	if err := c.db.UpdateGame(ctx, g); err != nil {
		return nil, err
	}
	if err := c.recalculateSeasonRecord(ctx, g.SeasonID); err != nil {
		return nil, err
	}
	return c.db.GetGame(ctx, g.ID)
}

func (c *controller) DeleteGame(ctx context.Context, id string) error {
	g, err := c.db.GetGame(ctx, id)
	if err != nil {
		return fmt.Errorf("error looking up game: %w", err)
	}

	if err := c.db.DeleteGame(ctx, id); err != nil {
		return err
	}
	return c.recalculateSeasonRecord(ctx, g.SeasonID)
}

func validateGame(g *model.Game) error {
	g.Opponent = strings.TrimSpace(g.Opponent)
	if g.Opponent == "" {
		return errors.New("opponent must be provided")
	}
	if g.Week < 1 || g.Week > 20 {
		return fmt.Errorf("week must be between 1 and 20, got %d", g.Week)
	}
	if g.Result == model.RESULT_UNKNOWN {
		return errors.New("result must be W, L or T")
	}
	return nil
}
