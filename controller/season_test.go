package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/miraclmoore/dynasty-os-sub001/db"
	"github.com/miraclmoore/dynasty-os-sub001/db/mockdb"
	"github.com/miraclmoore/dynasty-os-sub001/model"
)

func TestTallyRecord(t *testing.T) {
	g := func(result model.Result, gameType model.GameType) model.Game {
		return model.Game{Result: result, GameType: gameType}
	}

	tests := []struct {
		name                                 string
		games                                []model.Game
		wins, losses, confWins, confLosses   int
	}{
		{"no games", nil, 0, 0, 0, 0},
		{
			"mixed schedule",
			[]model.Game{
				g(model.RESULT_WIN, model.GAME_REGULAR),
				g(model.RESULT_WIN, model.GAME_CONFERENCE),
				g(model.RESULT_LOSS, model.GAME_CONFERENCE),
				g(model.RESULT_LOSS, model.GAME_BOWL),
			},
			2, 2, 1, 1,
		},
		{
			"ties count in neither column",
			[]model.Game{
				g(model.RESULT_TIE, model.GAME_CONFERENCE),
				g(model.RESULT_WIN, model.GAME_REGULAR),
			},
			1, 0, 0, 0,
		},
		{
			"playoff games are not conference games",
			[]model.Game{
				g(model.RESULT_WIN, model.GAME_PLAYOFF),
				g(model.RESULT_WIN, model.GAME_PLAYOFF),
			},
			2, 0, 0, 0,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wins, losses, confWins, confLosses := tallyRecord(tc.games)
			if wins != tc.wins || losses != tc.losses || confWins != tc.confWins || confLosses != tc.confLosses {
				t.Errorf("got %d-%d (%d-%d), want %d-%d (%d-%d)",
					wins, losses, confWins, confLosses,
					tc.wins, tc.losses, tc.confWins, tc.confLosses)
			}
		})
	}
}

func TestCreateGame_recalculatesSeasonRecord(t *testing.T) {
	mdb := &mockdb.DB{}
	c := &controller{db: mdb}

	season := &model.Season{ID: "s1", DynastyID: "d1", Year: 2024}
	mdb.On("GetSeason", mock.Anything, "s1").Return(season, nil)
	mdb.On("AddGame", mock.Anything, mock.Anything).Return(nil)
	mdb.On("ListSeasonGames", mock.Anything, "s1").Return([]model.Game{
		{Result: model.RESULT_WIN, GameType: model.GAME_CONFERENCE},
		{Result: model.RESULT_LOSS, GameType: model.GAME_REGULAR},
	}, nil)
	mdb.On("UpdateSeasonRecord", mock.Anything, "s1", 1, 1, 1, 0).Return(nil)

	g := &model.Game{
		SeasonID: "s1",
		Week:     5,
		Opponent: "Ohio State",
		Result:   model.RESULT_WIN,
		GameType: model.GAME_CONFERENCE,
	}
	created, err := c.CreateGame(context.Background(), g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.DynastyID != "d1" {
		t.Errorf("expected dynasty id stamped from the season, got %q", created.DynastyID)
	}
	mdb.AssertExpectations(t)
}

func TestCreateGame_validation(t *testing.T) {
	season := &model.Season{ID: "s1", DynastyID: "d1", Year: 2024}

	tests := []struct {
		name string
		game model.Game
	}{
		{"no opponent", model.Game{SeasonID: "s1", Week: 1, Result: model.RESULT_WIN}},
		{"week too low", model.Game{SeasonID: "s1", Week: 0, Opponent: "Purdue", Result: model.RESULT_WIN}},
		{"week too high", model.Game{SeasonID: "s1", Week: 21, Opponent: "Purdue", Result: model.RESULT_WIN}},
		{"no result", model.Game{SeasonID: "s1", Week: 1, Opponent: "Purdue"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mdb := &mockdb.DB{}
			c := &controller{db: mdb}
			mdb.On("GetSeason", mock.Anything, "s1").Return(season, nil)

			if _, err := c.CreateGame(context.Background(), &tc.game); err == nil {
				t.Error("expected a validation error")
			}
			mdb.AssertNotCalled(t, "AddGame", mock.Anything, mock.Anything)
		})
	}
}

func TestDeleteGame_missingSeasonIsNoOp(t *testing.T) {
	mdb := &mockdb.DB{}
	c := &controller{db: mdb}

	g := &model.Game{ID: "g1", SeasonID: "gone"}
	mdb.On("GetGame", mock.Anything, "g1").Return(g, nil)
	mdb.On("DeleteGame", mock.Anything, "g1").Return(nil)
	mdb.On("GetSeason", mock.Anything, "gone").Return(nil, db.ErrSeasonNotFound)

	if err := c.DeleteGame(context.Background(), "g1"); err != nil {
		t.Fatalf("expected deleting a game of a missing season to succeed, got %v", err)
	}
	mdb.AssertNotCalled(t, "UpdateSeasonRecord",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateGame_neverMovesSeasons(t *testing.T) {
	mdb := &mockdb.DB{}
	c := &controller{db: mdb}

	existing := &model.Game{ID: "g1", SeasonID: "s1", DynastyID: "d1", Week: 3, Opponent: "Purdue", Result: model.RESULT_WIN}
	mdb.On("GetGame", mock.Anything, "g1").Return(existing, nil)
	mdb.On("UpdateGame", mock.Anything, mock.MatchedBy(func(g *model.Game) bool {
		return g.SeasonID == "s1" && g.DynastyID == "d1"
	})).Return(nil)
	mdb.On("GetSeason", mock.Anything, "s1").Return(&model.Season{ID: "s1", DynastyID: "d1"}, nil)
	mdb.On("ListSeasonGames", mock.Anything, "s1").Return([]model.Game{}, nil)
	mdb.On("UpdateSeasonRecord", mock.Anything, "s1", 0, 0, 0, 0).Return(nil)

	update := &model.Game{ID: "g1", SeasonID: "other-season", Week: 4, Opponent: "Purdue", Result: model.RESULT_LOSS}
	if _, err := c.UpdateGame(context.Background(), update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mdb.AssertExpectations(t)
}

func TestCreateSeason_startsWithZeroRecord(t *testing.T) {
	mdb := &mockdb.DB{}
	c := &controller{db: mdb}

	mdb.On("GetDynasty", mock.Anything, "d1").Return(&model.Dynasty{ID: "d1"}, nil)
	mdb.On("AddSeason", mock.Anything, mock.MatchedBy(func(s *model.Season) bool {
		return s.Wins == 0 && s.Losses == 0 && s.ConfWins == 0 && s.ConfLosses == 0
	})).Return(nil)

	s := &model.Season{DynastyID: "d1", Year: 2024, Wins: 10, Losses: 2}
	if _, err := c.CreateSeason(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mdb.AssertExpectations(t)
}

func TestUpdateSeason_preservesDerivedRecord(t *testing.T) {
	mdb := &mockdb.DB{}
	c := &controller{db: mdb}

	stored := &model.Season{ID: "s1", DynastyID: "d1", Year: 2024, Wins: 8, Losses: 2, ConfWins: 5, ConfLosses: 1}
	mdb.On("GetSeason", mock.Anything, "s1").Return(stored, nil)
	mdb.On("UpdateSeason", mock.Anything, mock.MatchedBy(func(s *model.Season) bool {
		return s.Wins == 8 && s.Losses == 2 && s.ConfWins == 5 && s.ConfLosses == 1
	})).Return(nil)

	update := &model.Season{ID: "s1", Year: 2024, Wins: 0, Losses: 0, Notes: "rebuild year"}
	if _, err := c.UpdateSeason(context.Background(), update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mdb.AssertExpectations(t)
}
