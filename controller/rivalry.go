package controller

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/miraclmoore/dynasty-os-sub001/db"
	"github.com/miraclmoore/dynasty-os-sub001/model"
)

const momentumWindow = 5

func (c *controller) AddRival(ctx context.Context, dynastyID, opponent, label string) (*model.Rival, error) {
	if _, err := c.db.GetDynasty(ctx, dynastyID); err != nil {
		return nil, fmt.Errorf("error looking up dynasty: %w", err)
	}

	opponent = strings.TrimSpace(opponent)
	if opponent == "" {
		return nil, errors.New("opponent must be provided")
	}

	// One rival per opponent per dynasty.
	if _, err := c.db.FindRival(ctx, dynastyID, opponent); err == nil {
		return nil, fmt.Errorf("%s is already a rival", opponent)
	} else if !errors.Is(err, db.ErrRivalNotFound) {
		return nil, err
	}

	r := &model.Rival{
		DynastyID: dynastyID,
		Opponent:  opponent,
		Label:     strings.TrimSpace(label),
	}
	if err := c.db.AddRival(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (c *controller) ListRivals(ctx context.Context, dynastyID string) ([]model.Rival, error) {
	return c.db.ListRivals(ctx, dynastyID)
}

func (c *controller) DeleteRival(ctx context.Context, id string) error {
	return c.db.DeleteRival(ctx, id)
}

func (c *controller) GetRivalrySummary(ctx context.Context, rivalID string) (*model.RivalrySummary, error) {
	r, err := c.db.GetRival(ctx, rivalID)
	if err != nil {
		return nil, fmt.Errorf("error looking up rival: %w", err)
	}

	records, err := c.GetHeadToHead(ctx, r.DynastyID, nil, nil)
	if err != nil {
		return nil, err
	}

	summary := &model.RivalrySummary{Rival: *r}
	for i := range records {
		if records[i].Opponent == r.Opponent {
			summary.Record = &records[i]
			break
		}
	}
	if summary.Record != nil {
		summary.Intensity = rivalryIntensity(summary.Record.TotalGames)
		summary.Momentum = rivalryMomentum(summary.Record.Games)
	}

	summary.Moments, err = c.db.ListKeyMoments(ctx, rivalID)
	if err != nil {
		return nil, fmt.Errorf("error loading key moments: %w", err)
	}
	return summary, nil
}

func (c *controller) AddKeyMoment(ctx context.Context, rivalID string, year int, description string) error {
	if _, err := c.db.GetRival(ctx, rivalID); err != nil {
		return fmt.Errorf("error looking up rival: %w", err)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return errors.New("description must be provided")
	}

	m := &model.KeyMoment{
		RivalID:     rivalID,
		Year:        year,
		Description: description,
	}
	return c.db.AddKeyMoment(ctx, m)
}

func (c *controller) DeleteKeyMoment(ctx context.Context, rivalID string, year int, description string) error {
	return c.db.DeleteKeyMoment(ctx, rivalID, year, description)
}

// rivalryIntensity maps a rivalry's game count onto a bounded 0-10 scale.
// Two games per point, capped at 10, so a 20-game series maxes it out.
func rivalryIntensity(totalGames int) int {
	if totalGames <= 0 {
		return 0
	}
	intensity := int(math.Ceil(float64(totalGames) / 2))
	if intensity > 10 {
		intensity = 10
	}
	return intensity
}

// rivalryMomentum scores recent form against one opponent on a [-1, 1]
// scale. The input must be sorted most recent first (head-to-head output
// already is). The last 5 games count, weighted 5 down to 1 so the newest
// result dominates.
func rivalryMomentum(games []model.GameLine) float64 {
	if len(games) == 0 {
		return 0
	}

	n := len(games)
	if n > momentumWindow {
		n = momentumWindow
	}

	var score, weightTotal float64
	for i := 0; i < n; i++ {
		w := float64(momentumWindow - i)
		weightTotal += w
		switch games[i].Result {
		case model.RESULT_WIN:
			score += w
		case model.RESULT_LOSS:
			score -= w
		}
	}
	return math.Round(score/weightTotal*100) / 100
}
