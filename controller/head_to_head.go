package controller

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/miraclmoore/dynasty-os-sub001/model"
)

func (c *controller) GetHeadToHead(ctx context.Context, dynastyID string, startYear, endYear *int) ([]model.HeadToHeadRecord, error) {
	games, err := c.db.ListDynastyGames(ctx, dynastyID)
	if err != nil {
		return nil, fmt.Errorf("error loading games: %w", err)
	}
	years, err := c.seasonYears(ctx, dynastyID)
	if err != nil {
		return nil, err
	}

	return buildHeadToHead(games, years, startYear, endYear), nil
}

// buildHeadToHead groups a dynasty's games by opponent name and computes one
// aggregate record per opponent. Opponent matching is exact and
// case-sensitive; "Ohio State" and "ohio state" are two different opponents.
//
// A game whose season is missing from the year lookup gets year 0, which any
// positive lower bound filters out.
func buildHeadToHead(games []model.Game, yearBySeason map[string]int, startYear, endYear *int) []model.HeadToHeadRecord {
	type entry struct {
		games []model.Game
		years []int
	}
	byOpponent := make(map[string]*entry)
	order := make([]string, 0, 8)

	for _, g := range games {
		year := yearBySeason[g.SeasonID]
		if startYear != nil && year < *startYear {
			continue
		}
		if endYear != nil && year > *endYear {
			continue
		}

		e, found := byOpponent[g.Opponent]
		if !found {
			e = &entry{}
			byOpponent[g.Opponent] = e
			order = append(order, g.Opponent)
		}
		e.games = append(e.games, g)
		e.years = append(e.years, year)
	}

	records := make([]model.HeadToHeadRecord, 0, len(order))
	for _, opponent := range order {
		records = append(records, summarizeOpponent(opponent, byOpponent[opponent].games, byOpponent[opponent].years))
	}

	// Most-played opponents first; ties stay in first-encounter order.
	slices.SortStableFunc(records, func(a, b model.HeadToHeadRecord) int {
		return b.TotalGames - a.TotalGames
	})
	return records
}

func summarizeOpponent(opponent string, games []model.Game, years []int) model.HeadToHeadRecord {
	rec := model.HeadToHeadRecord{Opponent: opponent}

	lines := make([]model.GameLine, 0, len(games))
	for i, g := range games {
		switch g.Result {
		case model.RESULT_WIN:
			rec.Wins++
		case model.RESULT_LOSS:
			rec.Losses++
		case model.RESULT_TIE:
			rec.Ties++
		}
		lines = append(lines, model.GameLine{
			Year:   years[i],
			Week:   g.Week,
			Result: g.Result,
			Score:  fmt.Sprintf("%d-%d", g.TeamScore, g.OpponentScore),
		})
	}

	rec.TotalGames = len(games)
	if rec.TotalGames > 0 {
		rec.WinPct = math.Round(float64(rec.Wins)/float64(rec.TotalGames)*1000) / 10
	}

	// Most recent game first.
	slices.SortFunc(lines, func(a, b model.GameLine) int {
		if a.Year != b.Year {
			return b.Year - a.Year
		}
		return b.Week - a.Week
	})
	rec.Games = lines
	rec.Streak = currentStreak(lines)
	return rec
}

// currentStreak walks the game list from the most recent game backward,
// counting how long its result repeats.
func currentStreak(lines []model.GameLine) model.Streak {
	if len(lines) == 0 {
		return model.Streak{}
	}

	s := model.Streak{Type: lines[0].Result}
	for _, l := range lines {
		if l.Result != s.Type {
			break
		}
		s.Count++
	}
	return s
}
