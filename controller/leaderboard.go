package controller

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/miraclmoore/dynasty-os-sub001/model"
)

const defaultLeaderboardLimit = 10

func (c *controller) GetSeasonLeaders(ctx context.Context, dynastyID, statKey, seasonID string, limit int) ([]model.LeaderboardEntry, error) {
	if statKey == "" {
		return nil, errors.New("stat key must be provided")
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	var statLines []model.PlayerSeason
	var err error
	if seasonID != "" {
		statLines, err = c.db.ListSeasonPlayerSeasons(ctx, seasonID)
	} else {
		statLines, err = c.db.ListDynastyPlayerSeasons(ctx, dynastyID)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading stat lines: %w", err)
	}

	players, err := c.playersByID(ctx, dynastyID)
	if err != nil {
		return nil, err
	}
	years, err := c.seasonYears(ctx, dynastyID)
	if err != nil {
		return nil, err
	}

	return buildSeasonLeaders(statLines, players, years, statKey, limit), nil
}

func (c *controller) GetCareerLeaders(ctx context.Context, dynastyID, statKey string, limit int) ([]model.LeaderboardEntry, error) {
	if statKey == "" {
		return nil, errors.New("stat key must be provided")
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	d, err := c.db.GetDynasty(ctx, dynastyID)
	if err != nil {
		return nil, fmt.Errorf("error looking up dynasty: %w", err)
	}

	statLines, err := c.db.ListDynastyPlayerSeasons(ctx, dynastyID)
	if err != nil {
		return nil, fmt.Errorf("error loading stat lines: %w", err)
	}
	players, err := c.playersByID(ctx, dynastyID)
	if err != nil {
		return nil, err
	}

	policies := model.StatPoliciesFor(d.Sport)
	return buildCareerLeaders(statLines, players, policies, statKey, limit), nil
}

func (c *controller) playersByID(ctx context.Context, dynastyID string) (map[string]model.Player, error) {
	players, err := c.db.ListPlayers(ctx, dynastyID)
	if err != nil {
		return nil, fmt.Errorf("error loading players: %w", err)
	}
	byID := make(map[string]model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	return byID, nil
}

func (c *controller) seasonYears(ctx context.Context, dynastyID string) (map[string]int, error) {
	seasons, err := c.db.ListSeasons(ctx, dynastyID)
	if err != nil {
		return nil, fmt.Errorf("error loading seasons: %w", err)
	}
	years := make(map[string]int, len(seasons))
	for _, s := range seasons {
		years[s.ID] = s.Year
	}
	return years, nil
}

// buildSeasonLeaders ranks individual stat lines by one key. A value of
// exactly zero means "not recorded" and is skipped, so players who never
// touched the stat don't pad out the bottom of the board. Stat lines whose
// player no longer exists are dropped.
func buildSeasonLeaders(statLines []model.PlayerSeason, players map[string]model.Player, years map[string]int, statKey string, limit int) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(statLines))
	for _, line := range statLines {
		v := line.Stats[statKey]
		if v == 0 {
			continue
		}
		p, found := players[line.PlayerID]
		if !found {
			continue
		}
		entries = append(entries, model.LeaderboardEntry{
			PlayerID: p.ID,
			Name:     p.FullName(),
			Position: p.Position,
			Value:    v,
			Year:     years[line.SeasonID],
		})
	}

	// Stable so that equal values keep their original relative order.
	slices.SortStableFunc(entries, func(a, b model.LeaderboardEntry) int {
		switch {
		case b.Value > a.Value:
			return 1
		case b.Value < a.Value:
			return -1
		default:
			return 0
		}
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// buildCareerLeaders groups stat lines by player and collapses each group
// to a single career value per the stat's aggregation policy.
func buildCareerLeaders(statLines []model.PlayerSeason, players map[string]model.Player, policies model.StatPolicyTable, statKey string, limit int) []model.LeaderboardEntry {
	type group struct {
		lines []model.PlayerSeason
	}
	groups := make(map[string]*group)
	order := make([]string, 0, len(players))
	for _, line := range statLines {
		g, found := groups[line.PlayerID]
		if !found {
			g = &group{}
			groups[line.PlayerID] = g
			order = append(order, line.PlayerID)
		}
		g.lines = append(g.lines, line)
	}

	policy := policies.PolicyFor(statKey)

	entries := make([]model.LeaderboardEntry, 0, len(groups))
	for _, playerID := range order {
		p, found := players[playerID]
		if !found {
			continue
		}

		g := groups[playerID]
		value, ok := careerValue(g.lines, statKey, policy)
		if !ok {
			continue
		}
		entries = append(entries, model.LeaderboardEntry{
			PlayerID: p.ID,
			Name:     p.FullName(),
			Position: p.Position,
			Value:    value,
			Seasons:  len(g.lines),
		})
	}

	slices.SortStableFunc(entries, func(a, b model.LeaderboardEntry) int {
		switch {
		case b.Value > a.Value:
			return 1
		case b.Value < a.Value:
			return -1
		default:
			return 0
		}
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// careerValue collapses one player's seasons to a career number. The second
// return is false when the player has no real data for the key and should
// be left off the board entirely.
func careerValue(lines []model.PlayerSeason, statKey string, policy model.StatPolicy) (float64, bool) {
	if policy == model.PolicySum {
		var sum float64
		for _, line := range lines {
			sum += line.Stats[statKey]
		}
		if sum == 0 {
			return 0, false
		}
		return sum, true
	}

	// Weighted average: only seasons that actually recorded the stat count.
	// Games played is the weight; a season without a positive gamesPlayed
	// still contributes with weight 1 so no qualifying season is ignored.
	var weightedSum, weightTotal float64
	var plainSum float64
	qualifying := 0
	sawPositiveWeight := false
	for _, line := range lines {
		v := line.Stats[statKey]
		if v == 0 {
			continue
		}
		qualifying++
		plainSum += v

		w := line.Stats[model.StatGamesPlayed]
		if w > 0 {
			sawPositiveWeight = true
		} else {
			w = 1
		}
		weightedSum += v * w
		weightTotal += w
	}
	if qualifying == 0 {
		return 0, false
	}

	var mean float64
	if sawPositiveWeight {
		mean = weightedSum / weightTotal
	} else {
		// No games-played data at all; fall back to a plain average.
		mean = plainSum / float64(qualifying)
	}
	return math.Round(mean*10) / 10, true
}
