package db

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/miraclmoore/dynasty-os-sub001/model"
)

func TestPlayer_saveAndLoad(t *testing.T) {
	ctx := context.Background()
	d := seedDynasty(t)

	p := &model.Player{
		DynastyID: d.ID,
		FirstName: "Jake",
		LastName:  "Reeves",
		Position:  "QB",
		Status:    model.STATUS_ACTIVE,
	}
	err := testDB.AddPlayer(ctx, p)
	assertFatalf(t, err == nil, "error adding player: %v", err)

	res, err := testDB.GetPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error retrieving player: %v", err)
	assertEquals(t, "FirstName", "Jake", res.FirstName)
	assertEquals(t, "LastName", "Reeves", res.LastName)
	assertEquals(t, "Position", "QB", res.Position)
	assertEquals(t, "Status", model.STATUS_ACTIVE, res.Status)

	res.Status = model.STATUS_GRADUATED
	err = testDB.UpdatePlayer(ctx, res)
	assertFatalf(t, err == nil, "error updating player: %v", err)

	res2, err := testDB.GetPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error retrieving updated player: %v", err)
	assertEquals(t, "Status", model.STATUS_GRADUATED, res2.Status)
}

func TestPlayer_listSortedByName(t *testing.T) {
	ctx := context.Background()
	d := seedDynasty(t)

	names := [][2]string{{"Marcus", "Hill"}, {"Dre", "Coleman"}, {"Jake", "Reeves"}}
	for _, n := range names {
		p := &model.Player{DynastyID: d.ID, FirstName: n[0], LastName: n[1], Position: "WR", Status: model.STATUS_ACTIVE}
		err := testDB.AddPlayer(ctx, p)
		assertFatalf(t, err == nil, "error adding player: %v", err)
	}

	players, err := testDB.ListPlayers(ctx, d.ID)
	assertFatalf(t, err == nil, "error listing players: %v", err)
	assertFatalf(t, len(players) == 3, "expected 3 players, got %d", len(players))
	assertEquals(t, "first", "Coleman", players[0].LastName)
	assertEquals(t, "second", "Hill", players[1].LastName)
	assertEquals(t, "third", "Reeves", players[2].LastName)
}

func TestPlayerSeason_upsert(t *testing.T) {
	ctx := context.Background()
	d := seedDynasty(t)
	s := seedSeason(t, d.ID, 2024)

	p := &model.Player{DynastyID: d.ID, FirstName: "Jake", LastName: "Reeves", Position: "QB", Status: model.STATUS_ACTIVE}
	err := testDB.AddPlayer(ctx, p)
	assertFatalf(t, err == nil, "error adding player: %v", err)

	ps := &model.PlayerSeason{
		DynastyID: d.ID,
		PlayerID:  p.ID,
		SeasonID:  s.ID,
		Stats:     map[string]float64{"passingYards": 3200, "gamesPlayed": 10},
	}
	err = testDB.SavePlayerSeason(ctx, ps)
	assertFatalf(t, err == nil, "error saving stat line: %v", err)

	// Saving again for the same (player, season) replaces the stats instead
	// of adding a second row.
	ps2 := &model.PlayerSeason{
		DynastyID: d.ID,
		PlayerID:  p.ID,
		SeasonID:  s.ID,
		Stats:     map[string]float64{"passingYards": 3350, "passerRating": 91.5, "gamesPlayed": 11},
	}
	err = testDB.SavePlayerSeason(ctx, ps2)
	assertFatalf(t, err == nil, "error upserting stat line: %v", err)

	lines, err := testDB.ListSeasonPlayerSeasons(ctx, s.ID)
	assertFatalf(t, err == nil, "error listing stat lines: %v", err)
	assertFatalf(t, len(lines) == 1, "expected 1 stat line after upsert, got %d", len(lines))
	if !reflect.DeepEqual(lines[0].Stats, ps2.Stats) {
		t.Errorf("expected stats %v, got %v", ps2.Stats, lines[0].Stats)
	}
}

func TestPlayer_cascadeDelete(t *testing.T) {
	ctx := context.Background()
	d := seedDynasty(t)
	s := seedSeason(t, d.ID, 2024)

	p := &model.Player{DynastyID: d.ID, FirstName: "Marcus", LastName: "Hill", Position: "HB", Status: model.STATUS_ACTIVE}
	err := testDB.AddPlayer(ctx, p)
	assertFatalf(t, err == nil, "error adding player: %v", err)

	ps := &model.PlayerSeason{DynastyID: d.ID, PlayerID: p.ID, SeasonID: s.ID, Stats: map[string]float64{"rushingYards": 1450}}
	err = testDB.SavePlayerSeason(ctx, ps)
	assertFatalf(t, err == nil, "error saving stat line: %v", err)

	err = testDB.DeletePlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error deleting player: %v", err)

	if _, err := testDB.GetPlayer(ctx, p.ID); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
	lines, err := testDB.ListSeasonPlayerSeasons(ctx, s.ID)
	assertFatalf(t, err == nil, "error listing stat lines: %v", err)
	assertEquals(t, "stat lines after delete", 0, len(lines))
}
