package mockcontroller

import (
	"context"

	"github.com/miraclmoore/dynasty-os-sub001/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) CreateDynasty(ctx context.Context, d *model.Dynasty) (*model.Dynasty, error) {
	args := c.Called(ctx, d)

	var r *model.Dynasty
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Dynasty)
	}
	return r, args.Error(1)
}

func (c *C) GetDynasty(ctx context.Context, id string) (*model.Dynasty, error) {
	args := c.Called(ctx, id)

	var r *model.Dynasty
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Dynasty)
	}
	return r, args.Error(1)
}

func (c *C) ListDynasties(ctx context.Context) ([]model.Dynasty, error) {
	args := c.Called(ctx)

	var r []model.Dynasty
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Dynasty)
	}
	return r, args.Error(1)
}

func (c *C) UpdateDynasty(ctx context.Context, d *model.Dynasty) (*model.Dynasty, error) {
	args := c.Called(ctx, d)

	var r *model.Dynasty
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Dynasty)
	}
	return r, args.Error(1)
}

func (c *C) DeleteDynasty(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) CreateSeason(ctx context.Context, s *model.Season) (*model.Season, error) {
	args := c.Called(ctx, s)

	var r *model.Season
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Season)
	}
	return r, args.Error(1)
}

func (c *C) GetSeason(ctx context.Context, id string) (*model.Season, error) {
	args := c.Called(ctx, id)

	var r *model.Season
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Season)
	}
	return r, args.Error(1)
}

func (c *C) ListSeasons(ctx context.Context, dynastyID string) ([]model.Season, error) {
	args := c.Called(ctx, dynastyID)

	var r []model.Season
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Season)
	}
	return r, args.Error(1)
}

func (c *C) UpdateSeason(ctx context.Context, s *model.Season) (*model.Season, error) {
	args := c.Called(ctx, s)

	var r *model.Season
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Season)
	}
	return r, args.Error(1)
}

func (c *C) DeleteSeason(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) CreateGame(ctx context.Context, g *model.Game) (*model.Game, error) {
	args := c.Called(ctx, g)

	var r *model.Game
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Game)
	}
	return r, args.Error(1)
}

func (c *C) GetGame(ctx context.Context, id string) (*model.Game, error) {
	args := c.Called(ctx, id)

	var r *model.Game
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Game)
	}
	return r, args.Error(1)
}

func (c *C) ListGames(ctx context.Context, seasonID string) ([]model.Game, error) {
	args := c.Called(ctx, seasonID)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (c *C) UpdateGame(ctx context.Context, g *model.Game) (*model.Game, error) {
	args := c.Called(ctx, g)

	var r *model.Game
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Game)
	}
	return r, args.Error(1)
}

func (c *C) DeleteGame(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) CreatePlayer(ctx context.Context, p *model.Player) (*model.Player, error) {
	args := c.Called(ctx, p)

	var r *model.Player
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Player)
	}
	return r, args.Error(1)
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var r *model.Player
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Player)
	}
	return r, args.Error(1)
}

func (c *C) ListPlayers(ctx context.Context, dynastyID string) ([]model.Player, error) {
	args := c.Called(ctx, dynastyID)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (c *C) UpdatePlayer(ctx context.Context, p *model.Player) (*model.Player, error) {
	args := c.Called(ctx, p)

	var r *model.Player
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Player)
	}
	return r, args.Error(1)
}

func (c *C) DeletePlayer(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) SavePlayerSeason(ctx context.Context, ps *model.PlayerSeason) (*model.PlayerSeason, error) {
	args := c.Called(ctx, ps)

	var r *model.PlayerSeason
	if args.Get(0) != nil {
		r = args.Get(0).(*model.PlayerSeason)
	}
	return r, args.Error(1)
}

func (c *C) ListSeasonStats(ctx context.Context, seasonID string) ([]model.PlayerSeason, error) {
	args := c.Called(ctx, seasonID)

	var r []model.PlayerSeason
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PlayerSeason)
	}
	return r, args.Error(1)
}

func (c *C) DeletePlayerSeason(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) GetSeasonLeaders(ctx context.Context, dynastyID, statKey, seasonID string, limit int) ([]model.LeaderboardEntry, error) {
	args := c.Called(ctx, dynastyID, statKey, seasonID, limit)

	var r []model.LeaderboardEntry
	if args.Get(0) != nil {
		r = args.Get(0).([]model.LeaderboardEntry)
	}
	return r, args.Error(1)
}

func (c *C) GetCareerLeaders(ctx context.Context, dynastyID, statKey string, limit int) ([]model.LeaderboardEntry, error) {
	args := c.Called(ctx, dynastyID, statKey, limit)

	var r []model.LeaderboardEntry
	if args.Get(0) != nil {
		r = args.Get(0).([]model.LeaderboardEntry)
	}
	return r, args.Error(1)
}

func (c *C) GetHeadToHead(ctx context.Context, dynastyID string, startYear, endYear *int) ([]model.HeadToHeadRecord, error) {
	args := c.Called(ctx, dynastyID, startYear, endYear)

	var r []model.HeadToHeadRecord
	if args.Get(0) != nil {
		r = args.Get(0).([]model.HeadToHeadRecord)
	}
	return r, args.Error(1)
}

func (c *C) AddRival(ctx context.Context, dynastyID, opponent, label string) (*model.Rival, error) {
	args := c.Called(ctx, dynastyID, opponent, label)

	var r *model.Rival
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Rival)
	}
	return r, args.Error(1)
}

func (c *C) ListRivals(ctx context.Context, dynastyID string) ([]model.Rival, error) {
	args := c.Called(ctx, dynastyID)

	var r []model.Rival
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Rival)
	}
	return r, args.Error(1)
}

func (c *C) DeleteRival(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) GetRivalrySummary(ctx context.Context, rivalID string) (*model.RivalrySummary, error) {
	args := c.Called(ctx, rivalID)

	var r *model.RivalrySummary
	if args.Get(0) != nil {
		r = args.Get(0).(*model.RivalrySummary)
	}
	return r, args.Error(1)
}

func (c *C) AddKeyMoment(ctx context.Context, rivalID string, year int, description string) error {
	args := c.Called(ctx, rivalID, year, description)
	return args.Error(0)
}

func (c *C) DeleteKeyMoment(ctx context.Context, rivalID string, year int, description string) error {
	args := c.Called(ctx, rivalID, year, description)
	return args.Error(0)
}

func (c *C) SaveScoutingNote(ctx context.Context, dynastyID, opponent, note string) (*model.ScoutingNote, error) {
	args := c.Called(ctx, dynastyID, opponent, note)

	var r *model.ScoutingNote
	if args.Get(0) != nil {
		r = args.Get(0).(*model.ScoutingNote)
	}
	return r, args.Error(1)
}

func (c *C) ListScoutingNotes(ctx context.Context, dynastyID string) ([]model.ScoutingNote, error) {
	args := c.Called(ctx, dynastyID)

	var r []model.ScoutingNote
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ScoutingNote)
	}
	return r, args.Error(1)
}

func (c *C) DeleteScoutingNote(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) SavePrestigeRating(ctx context.Context, p *model.PrestigeRating) (*model.PrestigeRating, error) {
	args := c.Called(ctx, p)

	var r *model.PrestigeRating
	if args.Get(0) != nil {
		r = args.Get(0).(*model.PrestigeRating)
	}
	return r, args.Error(1)
}

func (c *C) ListPrestigeRatings(ctx context.Context, dynastyID string) ([]model.PrestigeRating, error) {
	args := c.Called(ctx, dynastyID)

	var r []model.PrestigeRating
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PrestigeRating)
	}
	return r, args.Error(1)
}

func (c *C) AddTransfer(ctx context.Context, t *model.TransferPortalEntry) (*model.TransferPortalEntry, error) {
	args := c.Called(ctx, t)

	var r *model.TransferPortalEntry
	if args.Get(0) != nil {
		r = args.Get(0).(*model.TransferPortalEntry)
	}
	return r, args.Error(1)
}

func (c *C) ListSeasonTransfers(ctx context.Context, seasonID string) ([]model.TransferPortalEntry, error) {
	args := c.Called(ctx, seasonID)

	var r []model.TransferPortalEntry
	if args.Get(0) != nil {
		r = args.Get(0).([]model.TransferPortalEntry)
	}
	return r, args.Error(1)
}

func (c *C) DeleteTransfer(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) CalculateTradeValue(in model.TradeValueInput) model.TradeValue {
	args := c.Called(in)
	return args.Get(0).(model.TradeValue)
}

func (c *C) ExportDynasty(ctx context.Context, id string) (*model.DynastyExport, error) {
	args := c.Called(ctx, id)

	var r *model.DynastyExport
	if args.Get(0) != nil {
		r = args.Get(0).(*model.DynastyExport)
	}
	return r, args.Error(1)
}

func (c *C) ImportDynasty(ctx context.Context, bundle *model.DynastyExport) (string, error) {
	args := c.Called(ctx, bundle)
	return args.String(0), args.Error(1)
}
