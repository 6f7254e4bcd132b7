package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/miraclmoore/dynasty-os-sub001/db"
	"github.com/miraclmoore/dynasty-os-sub001/db/mockdb"
	"github.com/miraclmoore/dynasty-os-sub001/model"
)

func TestRivalryIntensity(t *testing.T) {
	tests := []struct {
		totalGames int
		want       int
	}{
		{0, 0},
		{-3, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{10, 5},
		{19, 10},
		{20, 10},
		{50, 10},
	}
	for _, tc := range tests {
		if got := rivalryIntensity(tc.totalGames); got != tc.want {
			t.Errorf("rivalryIntensity(%d) = %d, want %d", tc.totalGames, got, tc.want)
		}
	}
}

func TestRivalryMomentum(t *testing.T) {
	w := model.GameLine{Result: model.RESULT_WIN}
	l := model.GameLine{Result: model.RESULT_LOSS}
	tie := model.GameLine{Result: model.RESULT_TIE}

	tests := []struct {
		name  string
		games []model.GameLine
		want  float64
	}{
		{"no games", nil, 0},
		{"all wins", []model.GameLine{w, w, w, w, w}, 1},
		{"all losses", []model.GameLine{l, l, l, l, l}, -1},
		// 5-4+3-2+1 over 15.
		{"alternating", []model.GameLine{w, l, w, l, w}, 0.2},
		// A recent win outweighs two older losses: (5-4-3)/12.
		{"recent win", []model.GameLine{w, l, l}, -0.17},
		{"ties are neutral", []model.GameLine{tie, tie, tie}, 0},
		// Only the newest five games count.
		{"window cuts old games", []model.GameLine{w, w, w, w, w, l, l, l}, 1},
		{"single loss", []model.GameLine{l}, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := rivalryMomentum(tc.games); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAddRival_rejectsDuplicateOpponent(t *testing.T) {
	mdb := &mockdb.DB{}
	c := &controller{db: mdb}

	mdb.On("GetDynasty", mock.Anything, "d1").Return(&model.Dynasty{ID: "d1"}, nil)
	mdb.On("FindRival", mock.Anything, "d1", "Ohio State").
		Return(&model.Rival{ID: "r1", DynastyID: "d1", Opponent: "Ohio State"}, nil)

	if _, err := c.AddRival(context.Background(), "d1", "Ohio State", ""); err == nil {
		t.Error("expected an error for a duplicate rival")
	}
	mdb.AssertNotCalled(t, "AddRival", mock.Anything, mock.Anything)
}

func TestAddRival_trimsOpponent(t *testing.T) {
	mdb := &mockdb.DB{}
	c := &controller{db: mdb}

	mdb.On("GetDynasty", mock.Anything, "d1").Return(&model.Dynasty{ID: "d1"}, nil)
	mdb.On("FindRival", mock.Anything, "d1", "Ohio State").Return(nil, db.ErrRivalNotFound)
	mdb.On("AddRival", mock.Anything, mock.MatchedBy(func(r *model.Rival) bool {
		return r.Opponent == "Ohio State" && r.Label == "The Game"
	})).Return(nil)

	r, err := c.AddRival(context.Background(), "d1", "  Ohio State ", " The Game ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Opponent != "Ohio State" {
		t.Errorf("expected trimmed opponent, got %q", r.Opponent)
	}
	mdb.AssertExpectations(t)
}

func TestGetRivalrySummary(t *testing.T) {
	mdb := &mockdb.DB{}
	c := &controller{db: mdb}

	rival := &model.Rival{ID: "r1", DynastyID: "d1", Opponent: "Ohio State"}
	moments := []model.KeyMoment{{RivalID: "r1", Year: 2024, Description: "Goal-line stand seals it"}}

	mdb.On("GetRival", mock.Anything, "r1").Return(rival, nil)
	mdb.On("ListDynastyGames", mock.Anything, "d1").Return(rivalryGames(), nil)
	mdb.On("ListSeasons", mock.Anything, "d1").Return([]model.Season{
		{ID: "s2024", Year: 2024},
		{ID: "s2025", Year: 2025},
	}, nil)
	mdb.On("ListKeyMoments", mock.Anything, "r1").Return(moments, nil)

	summary, err := c.GetRivalrySummary(context.Background(), "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Record == nil {
		t.Fatal("expected a head-to-head record for the rival")
	}
	if summary.Record.TotalGames != 3 {
		t.Errorf("expected 3 games in the record, got %d", summary.Record.TotalGames)
	}
	if summary.Intensity != 2 {
		t.Errorf("expected intensity 2 for a 3-game series, got %d", summary.Intensity)
	}
	// Most recent first is L, W, W: (-5+4+3)/12.
	if summary.Momentum != 0.17 {
		t.Errorf("expected momentum 0.17, got %v", summary.Momentum)
	}
	if len(summary.Moments) != 1 {
		t.Errorf("expected 1 key moment, got %d", len(summary.Moments))
	}
	mdb.AssertExpectations(t)
}

func TestGetRivalrySummary_neverPlayed(t *testing.T) {
	mdb := &mockdb.DB{}
	c := &controller{db: mdb}

	rival := &model.Rival{ID: "r1", DynastyID: "d1", Opponent: "Slippery Rock"}
	mdb.On("GetRival", mock.Anything, "r1").Return(rival, nil)
	mdb.On("ListDynastyGames", mock.Anything, "d1").Return(rivalryGames(), nil)
	mdb.On("ListSeasons", mock.Anything, "d1").Return([]model.Season{{ID: "s2024", Year: 2024}}, nil)
	mdb.On("ListKeyMoments", mock.Anything, "r1").Return([]model.KeyMoment{}, nil)

	summary, err := c.GetRivalrySummary(context.Background(), "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Record != nil {
		t.Errorf("expected no record for an unplayed rival, got %+v", summary.Record)
	}
	if summary.Intensity != 0 || summary.Momentum != 0 {
		t.Errorf("expected zero intensity and momentum, got %d and %v", summary.Intensity, summary.Momentum)
	}
}
