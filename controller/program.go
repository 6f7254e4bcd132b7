package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/miraclmoore/dynasty-os-sub001/model"
)

func (c *controller) SaveScoutingNote(ctx context.Context, dynastyID, opponent, note string) (*model.ScoutingNote, error) {
	if _, err := c.db.GetDynasty(ctx, dynastyID); err != nil {
		return nil, fmt.Errorf("error looking up dynasty: %w", err)
	}

	opponent = strings.TrimSpace(opponent)
	if opponent == "" {
		return nil, errors.New("opponent must be provided")
	}

	n := &model.ScoutingNote{
		DynastyID: dynastyID,
		Opponent:  opponent,
		Note:      note,
	}
	if err := c.db.SaveScoutingNote(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (c *controller) ListScoutingNotes(ctx context.Context, dynastyID string) ([]model.ScoutingNote, error) {
	return c.db.ListScoutingNotes(ctx, dynastyID)
}

func (c *controller) DeleteScoutingNote(ctx context.Context, id string) error {
	return c.db.DeleteScoutingNote(ctx, id)
}

func (c *controller) SavePrestigeRating(ctx context.Context, p *model.PrestigeRating) (*model.PrestigeRating, error) {
	if _, err := c.db.GetDynasty(ctx, p.DynastyID); err != nil {
		return nil, fmt.Errorf("error looking up dynasty: %w", err)
	}
	if p.Rating < 1 || p.Rating > 100 {
		return nil, fmt.Errorf("rating must be between 1 and 100, got %d", p.Rating)
	}
	if p.Year <= 0 {
		return nil, fmt.Errorf("year must be positive, got %d", p.Year)
	}

	if err := c.db.SavePrestigeRating(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *controller) ListPrestigeRatings(ctx context.Context, dynastyID string) ([]model.PrestigeRating, error) {
	return c.db.ListPrestigeRatings(ctx, dynastyID)
}

func (c *controller) AddTransfer(ctx context.Context, t *model.TransferPortalEntry) (*model.TransferPortalEntry, error) {
	s, err := c.db.GetSeason(ctx, t.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("error looking up season: %w", err)
	}
	t.DynastyID = s.DynastyID

	t.PlayerName = strings.TrimSpace(t.PlayerName)
	if t.PlayerName == "" {
		return nil, errors.New("player name must be provided")
	}
	// Star ratings only make sense for incoming players.
	if t.EntryType == model.TRANSFER_DEPARTURE {
		t.StarRating = nil
	}

	if err := c.db.AddTransfer(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (c *controller) ListSeasonTransfers(ctx context.Context, seasonID string) ([]model.TransferPortalEntry, error) {
	return c.db.ListSeasonTransfers(ctx, seasonID)
}

func (c *controller) DeleteTransfer(ctx context.Context, id string) error {
	return c.db.DeleteTransfer(ctx, id)
}
