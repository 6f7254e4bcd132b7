package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/miraclmoore/dynasty-os-sub001/model"
)

func (c *controller) CreatePlayer(ctx context.Context, p *model.Player) (*model.Player, error) {
	if _, err := c.db.GetDynasty(ctx, p.DynastyID); err != nil {
		return nil, fmt.Errorf("error looking up dynasty: %w", err)
	}

	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	if p.FirstName == "" && p.LastName == "" {
		return nil, errors.New("player name must be provided")
	}
	if p.Status == "" {
		p.Status = model.STATUS_ACTIVE
	}

	if err := c.db.AddPlayer(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *controller) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

func (c *controller) ListPlayers(ctx context.Context, dynastyID string) ([]model.Player, error) {
	return c.db.ListPlayers(ctx, dynastyID)
}

func (c *controller) UpdatePlayer(ctx context.Context, p *model.Player) (*model.Player, error) {
	existing, err := c.db.GetPlayer(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("error looking up player: %w", err)
	}
	p.DynastyID = existing.DynastyID

	if err := c.db.UpdatePlayer(ctx, p); err != nil {
		return nil, err
	}
	return c.db.GetPlayer(ctx, p.ID)
}

func (c *controller) DeletePlayer(ctx context.Context, id string) error {
	return c.db.DeletePlayer(ctx, id)
}

func (c *controller) SavePlayerSeason(ctx context.Context, ps *model.PlayerSeason) (*model.PlayerSeason, error) {
	p, err := c.db.GetPlayer(ctx, ps.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("error looking up player: %w", err)
	}
	if _, err := c.db.GetSeason(ctx, ps.SeasonID); err != nil {
		return nil, fmt.Errorf("error looking up season: %w", err)
	}
	ps.DynastyID = p.DynastyID

	if ps.Stats == nil {
		ps.Stats = map[string]float64{}
	}
	if err := c.db.SavePlayerSeason(ctx, ps); err != nil {
		return nil, err
	}
	return ps, nil
}

func (c *controller) ListSeasonStats(ctx context.Context, seasonID string) ([]model.PlayerSeason, error) {
	return c.db.ListSeasonPlayerSeasons(ctx, seasonID)
}

func (c *controller) DeletePlayerSeason(ctx context.Context, id string) error {
	return c.db.DeletePlayerSeason(ctx, id)
}
