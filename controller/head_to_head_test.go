package controller

import (
	"reflect"
	"testing"

	"github.com/miraclmoore/dynasty-os-sub001/model"
)

func game(seasonID string, week int, opponent string, result model.Result, teamScore, oppScore int) model.Game {
	return model.Game{
		SeasonID:      seasonID,
		Week:          week,
		Opponent:      opponent,
		Result:        result,
		TeamScore:     teamScore,
		OpponentScore: oppScore,
		GameType:      model.GAME_CONFERENCE,
	}
}

var h2hYears = map[string]int{"s2024": 2024, "s2025": 2025}

func rivalryGames() []model.Game {
	return []model.Game{
		game("s2024", 5, "Ohio State", model.RESULT_WIN, 30, 27),
		game("s2024", 9, "Purdue", model.RESULT_WIN, 42, 10),
		game("s2025", 3, "Ohio State", model.RESULT_WIN, 21, 17),
		game("s2025", 12, "Ohio State", model.RESULT_LOSS, 14, 31),
	}
}

func TestBuildHeadToHead(t *testing.T) {
	records := buildHeadToHead(rivalryGames(), h2hYears, nil, nil)
	if len(records) != 2 {
		t.Fatalf("expected 2 opponents, got %d", len(records))
	}

	// Ohio State has the most games, so it comes first.
	osu := records[0]
	if osu.Opponent != "Ohio State" {
		t.Fatalf("expected Ohio State first, got %s", osu.Opponent)
	}
	if osu.Wins != 2 || osu.Losses != 1 || osu.Ties != 0 {
		t.Errorf("expected 2-1-0, got %d-%d-%d", osu.Wins, osu.Losses, osu.Ties)
	}
	if osu.TotalGames != 3 {
		t.Errorf("expected 3 total games, got %d", osu.TotalGames)
	}
	if osu.WinPct != 66.7 {
		t.Errorf("expected 66.7 win pct, got %v", osu.WinPct)
	}

	// The most recent game is the 2025 week-12 loss, so the streak is L1.
	if osu.Streak.Type != model.RESULT_LOSS || osu.Streak.Count != 1 {
		t.Errorf("expected streak L1, got %s%d", osu.Streak.Type, osu.Streak.Count)
	}

	wantFirst := model.GameLine{Year: 2025, Week: 12, Result: model.RESULT_LOSS, Score: "14-31"}
	if !reflect.DeepEqual(osu.Games[0], wantFirst) {
		t.Errorf("most recent game line wrong: got %+v, want %+v", osu.Games[0], wantFirst)
	}

	if records[1].Opponent != "Purdue" || records[1].WinPct != 100.0 {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestBuildHeadToHead_caseSensitiveOpponents(t *testing.T) {
	games := []model.Game{
		game("s2024", 1, "Ohio State", model.RESULT_WIN, 20, 10),
		game("s2024", 2, "ohio state", model.RESULT_LOSS, 10, 20),
	}

	records := buildHeadToHead(games, h2hYears, nil, nil)
	if len(records) != 2 {
		t.Fatalf("expected differently-cased names to stay separate, got %d records", len(records))
	}
}

func TestBuildHeadToHead_yearFilter(t *testing.T) {
	start, end := 2025, 2025
	records := buildHeadToHead(rivalryGames(), h2hYears, &start, &end)
	if len(records) != 1 {
		t.Fatalf("expected only Ohio State in 2025, got %d records", len(records))
	}
	if records[0].TotalGames != 2 || records[0].Wins != 1 || records[0].Losses != 1 {
		t.Errorf("unexpected 2025-only record: %+v", records[0])
	}
}

func TestBuildHeadToHead_openEndedBounds(t *testing.T) {
	start := 2025
	records := buildHeadToHead(rivalryGames(), h2hYears, &start, nil)
	if len(records) != 1 || records[0].TotalGames != 2 {
		t.Fatalf("expected 2 Ohio State games from 2025 on, got %+v", records)
	}

	end := 2024
	records = buildHeadToHead(rivalryGames(), h2hYears, nil, &end)
	if len(records) != 2 {
		t.Fatalf("expected both opponents through 2024, got %d records", len(records))
	}
	for _, r := range records {
		if r.TotalGames != 1 {
			t.Errorf("expected one 2024 game against %s, got %d", r.Opponent, r.TotalGames)
		}
	}
}

func TestBuildHeadToHead_missingSeasonGetsYearZero(t *testing.T) {
	games := []model.Game{game("gone", 1, "Ohio State", model.RESULT_WIN, 20, 10)}

	start := 1
	if records := buildHeadToHead(games, h2hYears, &start, nil); len(records) != 0 {
		t.Errorf("expected year-0 game to be filtered by a positive lower bound, got %+v", records)
	}
	if records := buildHeadToHead(games, h2hYears, nil, nil); len(records) != 1 {
		t.Errorf("expected unfiltered game to survive, got %+v", records)
	}
}

func TestCurrentStreak(t *testing.T) {
	line := func(r model.Result) model.GameLine { return model.GameLine{Result: r} }

	tests := []struct {
		name  string
		lines []model.GameLine
		want  model.Streak
	}{
		{"empty", nil, model.Streak{}},
		{"single win", []model.GameLine{line(model.RESULT_WIN)}, model.Streak{Type: model.RESULT_WIN, Count: 1}},
		{
			"loss snaps wins",
			[]model.GameLine{line(model.RESULT_LOSS), line(model.RESULT_WIN), line(model.RESULT_WIN)},
			model.Streak{Type: model.RESULT_LOSS, Count: 1},
		},
		{
			"three straight",
			[]model.GameLine{line(model.RESULT_WIN), line(model.RESULT_WIN), line(model.RESULT_WIN), line(model.RESULT_TIE)},
			model.Streak{Type: model.RESULT_WIN, Count: 3},
		},
		{
			"tie streak",
			[]model.GameLine{line(model.RESULT_TIE), line(model.RESULT_TIE), line(model.RESULT_LOSS)},
			model.Streak{Type: model.RESULT_TIE, Count: 2},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := currentStreak(tc.lines); got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
