package controller

import (
	"fmt"
	"testing"

	"github.com/miraclmoore/dynasty-os-sub001/model"
)

func statLine(playerID, seasonID string, stats map[string]float64) model.PlayerSeason {
	return model.PlayerSeason{
		ID:       fmt.Sprintf("%s-%s", playerID, seasonID),
		PlayerID: playerID,
		SeasonID: seasonID,
		Stats:    stats,
	}
}

var leaderboardPlayers = map[string]model.Player{
	"p1": {ID: "p1", FirstName: "Jake", LastName: "Reeves", Position: "QB"},
	"p2": {ID: "p2", FirstName: "Marcus", LastName: "Hill", Position: "HB"},
	"p3": {ID: "p3", FirstName: "Dre", LastName: "Coleman", Position: "WR"},
}

func TestBuildSeasonLeaders(t *testing.T) {
	years := map[string]int{"s1": 2024, "s2": 2025}
	lines := []model.PlayerSeason{
		statLine("p1", "s1", map[string]float64{"passingYards": 3200}),
		statLine("p2", "s1", map[string]float64{"passingYards": 0}),   // zero means not recorded
		statLine("p3", "s1", map[string]float64{"rushingYards": 900}), // key absent
		statLine("p1", "s2", map[string]float64{"passingYards": 4100}),
	}

	leaders := buildSeasonLeaders(lines, leaderboardPlayers, years, "passingYards", 10)
	if len(leaders) != 2 {
		t.Fatalf("expected 2 leaders, got %d", len(leaders))
	}
	if leaders[0].Value != 4100 || leaders[0].Year != 2025 {
		t.Errorf("wrong top entry: %+v", leaders[0])
	}
	if leaders[1].Value != 3200 || leaders[1].Year != 2024 {
		t.Errorf("wrong second entry: %+v", leaders[1])
	}
	if leaders[0].Name != "Jake Reeves" || leaders[0].Position != "QB" {
		t.Errorf("player join failed: %+v", leaders[0])
	}
}

func TestBuildSeasonLeaders_dropsOrphans(t *testing.T) {
	lines := []model.PlayerSeason{
		statLine("p1", "s1", map[string]float64{"tackles": 80}),
		statLine("ghost", "s1", map[string]float64{"tackles": 120}),
	}

	leaders := buildSeasonLeaders(lines, leaderboardPlayers, map[string]int{"s1": 2024}, "tackles", 10)
	if len(leaders) != 1 {
		t.Fatalf("expected orphaned stat line to be dropped, got %d entries", len(leaders))
	}
	if leaders[0].PlayerID != "p1" {
		t.Errorf("expected p1, got %s", leaders[0].PlayerID)
	}
}

func TestBuildSeasonLeaders_stableOnTies(t *testing.T) {
	lines := []model.PlayerSeason{
		statLine("p1", "s1", map[string]float64{"sacks": 8}),
		statLine("p2", "s1", map[string]float64{"sacks": 8}),
		statLine("p3", "s1", map[string]float64{"sacks": 8}),
	}

	leaders := buildSeasonLeaders(lines, leaderboardPlayers, map[string]int{"s1": 2024}, "sacks", 10)
	got := []string{leaders[0].PlayerID, leaders[1].PlayerID, leaders[2].PlayerID}
	want := []string{"p1", "p2", "p3"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tie order changed: got %v, want %v", got, want)
			break
		}
	}
}

func TestBuildSeasonLeaders_limit(t *testing.T) {
	lines := make([]model.PlayerSeason, 0, 4)
	for i, id := range []string{"p1", "p2", "p3"} {
		lines = append(lines, statLine(id, "s1", map[string]float64{"points": float64(10 + i)}))
	}

	leaders := buildSeasonLeaders(lines, leaderboardPlayers, map[string]int{"s1": 2024}, "points", 2)
	if len(leaders) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(leaders))
	}
	if leaders[0].PlayerID != "p3" {
		t.Errorf("expected p3 on top, got %s", leaders[0].PlayerID)
	}
}

func TestBuildCareerLeaders_summedStat(t *testing.T) {
	lines := []model.PlayerSeason{
		statLine("p1", "s1", map[string]float64{"passingYards": 3200}),
		statLine("p1", "s2", map[string]float64{"passingYards": 1800}),
		statLine("p2", "s1", map[string]float64{"passingYards": 0}),
		statLine("p2", "s2", map[string]float64{}),
	}

	leaders := buildCareerLeaders(lines, leaderboardPlayers, model.StatPoliciesFor(model.SPORT_CFB), "passingYards", 10)
	if len(leaders) != 1 {
		t.Fatalf("expected only p1, got %d entries", len(leaders))
	}
	if leaders[0].Value != 5000 {
		t.Errorf("expected career total 5000, got %v", leaders[0].Value)
	}
	if leaders[0].Seasons != 2 {
		t.Errorf("expected 2 seasons, got %d", leaders[0].Seasons)
	}
}

func TestCareerValue_weightedAverage(t *testing.T) {
	// (90*10 + 80*5) / 15 = 86.666... -> 86.7
	lines := []model.PlayerSeason{
		statLine("p1", "s1", map[string]float64{"passerRating": 90, "gamesPlayed": 10}),
		statLine("p1", "s2", map[string]float64{"passerRating": 80, "gamesPlayed": 5}),
	}

	v, ok := careerValue(lines, "passerRating", model.PolicyWeightedAverage)
	if !ok {
		t.Fatal("expected a career value")
	}
	if v != 86.7 {
		t.Errorf("expected 86.7, got %v", v)
	}
}

func TestCareerValue_weightedAverageBounds(t *testing.T) {
	lines := []model.PlayerSeason{
		statLine("p1", "s1", map[string]float64{"passerRating": 95.5, "gamesPlayed": 13}),
		statLine("p1", "s2", map[string]float64{"passerRating": 71.2, "gamesPlayed": 4}),
		statLine("p1", "s3", map[string]float64{"passerRating": 88.9, "gamesPlayed": 12}),
	}

	v, ok := careerValue(lines, "passerRating", model.PolicyWeightedAverage)
	if !ok {
		t.Fatal("expected a career value")
	}
	if v < 71.2 || v > 95.5 {
		t.Errorf("weighted mean %v outside the contributing range [71.2, 95.5]", v)
	}
}

func TestCareerValue_missingWeightCountsAsOne(t *testing.T) {
	// The second season has no gamesPlayed, so it contributes with weight 1:
	// (100*9 + 50*1) / 10 = 95.0
	lines := []model.PlayerSeason{
		statLine("p1", "s1", map[string]float64{"puntAverage": 100, "gamesPlayed": 9}),
		statLine("p1", "s2", map[string]float64{"puntAverage": 50}),
	}

	v, ok := careerValue(lines, "puntAverage", model.PolicyWeightedAverage)
	if !ok {
		t.Fatal("expected a career value")
	}
	if v != 95.0 {
		t.Errorf("expected 95.0, got %v", v)
	}
}

func TestCareerValue_fallbackToPlainMean(t *testing.T) {
	// No season has gamesPlayed, so the value is a simple average.
	lines := []model.PlayerSeason{
		statLine("p1", "s1", map[string]float64{"passerRating": 90}),
		statLine("p1", "s2", map[string]float64{"passerRating": 80}),
	}

	v, ok := careerValue(lines, "passerRating", model.PolicyWeightedAverage)
	if !ok {
		t.Fatal("expected a career value")
	}
	if v != 85.0 {
		t.Errorf("expected 85.0, got %v", v)
	}
}

func TestCareerValue_noQualifyingSeasons(t *testing.T) {
	lines := []model.PlayerSeason{
		statLine("p1", "s1", map[string]float64{"passerRating": 0, "gamesPlayed": 10}),
		statLine("p1", "s2", map[string]float64{"gamesPlayed": 8}),
	}

	if _, ok := careerValue(lines, "passerRating", model.PolicyWeightedAverage); ok {
		t.Error("expected player with no recorded seasons to be excluded")
	}
}

func TestCareerValue_allZeroSumExcluded(t *testing.T) {
	lines := []model.PlayerSeason{
		statLine("p1", "s1", map[string]float64{"passingYards": 0}),
		statLine("p1", "s2", map[string]float64{}),
	}

	if _, ok := careerValue(lines, "passingYards", model.PolicySum); ok {
		t.Error("expected all-zero career to be excluded")
	}
}
