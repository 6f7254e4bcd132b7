package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/miraclmoore/dynasty-os-sub001/model"
)

func (c *controller) CreateDynasty(ctx context.Context, d *model.Dynasty) (*model.Dynasty, error) {
	d.Team = strings.TrimSpace(d.Team)
	if d.Team == "" {
		return nil, errors.New("team must be provided")
	}
	d.Coach = strings.TrimSpace(d.Coach)

	if d.Sport == model.SPORT_UNKNOWN {
		return nil, fmt.Errorf("unsupported sport")
	}
	if d.StartYear <= 0 {
		return nil, fmt.Errorf("start year must be positive, got %d", d.StartYear)
	}
	if d.CurrentYear == 0 {
		d.CurrentYear = d.StartYear
	}
	if d.CurrentYear < d.StartYear {
		return nil, fmt.Errorf("current year %d is before start year %d", d.CurrentYear, d.StartYear)
	}

	if err := c.db.AddDynasty(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (c *controller) GetDynasty(ctx context.Context, id string) (*model.Dynasty, error) {
	return c.db.GetDynasty(ctx, id)
}

func (c *controller) ListDynasties(ctx context.Context) ([]model.Dynasty, error) {
	return c.db.ListDynasties(ctx)
}

func (c *controller) UpdateDynasty(ctx context.Context, d *model.Dynasty) (*model.Dynasty, error) {
	existing, err := c.db.GetDynasty(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("error looking up dynasty: %w", err)
	}

	// Sport is fixed at creation, everything else may change.
	d.Sport = existing.Sport
	if err := c.db.UpdateDynasty(ctx, d); err != nil {
		return nil, err
	}
	return c.db.GetDynasty(ctx, d.ID)
}

func (c *controller) DeleteDynasty(ctx context.Context, id string) error {
	if _, err := c.db.GetDynasty(ctx, id); err != nil {
		return fmt.Errorf("error looking up dynasty: %w", err)
	}
	return c.db.DeleteDynasty(ctx, id)
}
