package testutils

import (
	"context"
	"fmt"

	"github.com/miraclmoore/dynasty-os-sub001/db"
	"github.com/miraclmoore/dynasty-os-sub001/model"
)

// Fixture is a seeded dynasty with two seasons of games and a small roster,
// used by the db and controller integration tests.
type Fixture struct {
	Dynasty *model.Dynasty
	Seasons []*model.Season
	Players []*model.Player
}

// SeedDynasty creates a CFB dynasty with 2024 and 2025 seasons, three games
// against Ohio State (W, W then L in the most recent), one conference win
// over Purdue, and two players with stat lines.
func SeedDynasty(ctx context.Context, d db.DB) (*Fixture, error) {
	dynasty := &model.Dynasty{
		Sport:       model.SPORT_CFB,
		Team:        "Michigan",
		Coach:       "Test Coach",
		StartYear:   2024,
		CurrentYear: 2025,
	}
	if err := d.AddDynasty(ctx, dynasty); err != nil {
		return nil, fmt.Errorf("error seeding dynasty: %w", err)
	}

	f := &Fixture{Dynasty: dynasty}

	for _, year := range []int{2024, 2025} {
		s := &model.Season{DynastyID: dynasty.ID, Year: year}
		if err := d.AddSeason(ctx, s); err != nil {
			return nil, fmt.Errorf("error seeding season %d: %w", year, err)
		}
		f.Seasons = append(f.Seasons, s)
	}

	games := []*model.Game{
		{SeasonID: f.Seasons[0].ID, Week: 5, Opponent: "Ohio State", TeamScore: 30, OpponentScore: 24,
			Result: model.RESULT_WIN, Location: model.LOC_HOME, GameType: model.GAME_CONFERENCE},
		{SeasonID: f.Seasons[0].ID, Week: 9, Opponent: "Purdue", TeamScore: 41, OpponentScore: 13,
			Result: model.RESULT_WIN, Location: model.LOC_AWAY, GameType: model.GAME_CONFERENCE},
		{SeasonID: f.Seasons[1].ID, Week: 3, Opponent: "Ohio State", TeamScore: 27, OpponentScore: 20,
			Result: model.RESULT_WIN, Location: model.LOC_AWAY, GameType: model.GAME_CONFERENCE},
		{SeasonID: f.Seasons[1].ID, Week: 12, Opponent: "Ohio State", TeamScore: 17, OpponentScore: 21,
			Result: model.RESULT_LOSS, Location: model.LOC_HOME, GameType: model.GAME_CONFERENCE},
	}
	for _, g := range games {
		g.DynastyID = dynasty.ID
		if err := d.AddGame(ctx, g); err != nil {
			return nil, fmt.Errorf("error seeding game vs %s: %w", g.Opponent, err)
		}
	}

	players := []*model.Player{
		{DynastyID: dynasty.ID, FirstName: "Jake", LastName: "Reeves", Position: "QB", Status: model.STATUS_ACTIVE},
		{DynastyID: dynasty.ID, FirstName: "Marcus", LastName: "Hill", Position: "HB", Status: model.STATUS_ACTIVE},
	}
	for _, p := range players {
		if err := d.AddPlayer(ctx, p); err != nil {
			return nil, fmt.Errorf("error seeding player %s: %w", p.FullName(), err)
		}
		f.Players = append(f.Players, p)
	}

	statLines := []*model.PlayerSeason{
		{DynastyID: dynasty.ID, PlayerID: players[0].ID, SeasonID: f.Seasons[0].ID,
			Stats: map[string]float64{"passingYards": 3200, "passerRating": 90, "gamesPlayed": 10}},
		{DynastyID: dynasty.ID, PlayerID: players[0].ID, SeasonID: f.Seasons[1].ID,
			Stats: map[string]float64{"passingYards": 1800, "passerRating": 80, "gamesPlayed": 5}},
		{DynastyID: dynasty.ID, PlayerID: players[1].ID, SeasonID: f.Seasons[0].ID,
			Stats: map[string]float64{"rushingYards": 1450, "gamesPlayed": 12}},
	}
	for _, ps := range statLines {
		if err := d.SavePlayerSeason(ctx, ps); err != nil {
			return nil, fmt.Errorf("error seeding stat line: %w", err)
		}
	}

	return f, nil
}
