package mockdb

import (
	"context"

	"github.com/miraclmoore/dynasty-os-sub001/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetDynasty(ctx context.Context, id string) (*model.Dynasty, error) {
	args := db.Called(ctx, id)

	var d *model.Dynasty
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Dynasty)
	}
	return d, args.Error(1)
}

func (db *DB) ListDynasties(ctx context.Context) ([]model.Dynasty, error) {
	args := db.Called(ctx)

	var r []model.Dynasty
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Dynasty)
	}
	return r, args.Error(1)
}

func (db *DB) AddDynasty(ctx context.Context, d *model.Dynasty) error {
	args := db.Called(ctx, d)
	return args.Error(0)
}

func (db *DB) UpdateDynasty(ctx context.Context, d *model.Dynasty) error {
	args := db.Called(ctx, d)
	return args.Error(0)
}

func (db *DB) DeleteDynasty(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) GetSeason(ctx context.Context, id string) (*model.Season, error) {
	args := db.Called(ctx, id)

	var s *model.Season
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Season)
	}
	return s, args.Error(1)
}

func (db *DB) ListSeasons(ctx context.Context, dynastyID string) ([]model.Season, error) {
	args := db.Called(ctx, dynastyID)

	var r []model.Season
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Season)
	}
	return r, args.Error(1)
}

func (db *DB) AddSeason(ctx context.Context, s *model.Season) error {
	args := db.Called(ctx, s)
	return args.Error(0)
}

func (db *DB) UpdateSeason(ctx context.Context, s *model.Season) error {
	args := db.Called(ctx, s)
	return args.Error(0)
}

func (db *DB) UpdateSeasonRecord(ctx context.Context, id string, wins, losses, confWins, confLosses int) error {
	args := db.Called(ctx, id, wins, losses, confWins, confLosses)
	return args.Error(0)
}

func (db *DB) DeleteSeason(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	args := db.Called(ctx, id)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) ListSeasonGames(ctx context.Context, seasonID string) ([]model.Game, error) {
	args := db.Called(ctx, seasonID)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) ListDynastyGames(ctx context.Context, dynastyID string) ([]model.Game, error) {
	args := db.Called(ctx, dynastyID)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) AddGame(ctx context.Context, g *model.Game) error {
	args := db.Called(ctx, g)
	return args.Error(0)
}

func (db *DB) UpdateGame(ctx context.Context, g *model.Game) error {
	args := db.Called(ctx, g)
	return args.Error(0)
}

func (db *DB) DeleteGame(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) ListPlayers(ctx context.Context, dynastyID string) ([]model.Player, error) {
	args := db.Called(ctx, dynastyID)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) AddPlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) UpdatePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) DeletePlayer(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) SavePlayerSeason(ctx context.Context, ps *model.PlayerSeason) error {
	args := db.Called(ctx, ps)
	return args.Error(0)
}

func (db *DB) ListDynastyPlayerSeasons(ctx context.Context, dynastyID string) ([]model.PlayerSeason, error) {
	args := db.Called(ctx, dynastyID)

	var r []model.PlayerSeason
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PlayerSeason)
	}
	return r, args.Error(1)
}

func (db *DB) ListSeasonPlayerSeasons(ctx context.Context, seasonID string) ([]model.PlayerSeason, error) {
	args := db.Called(ctx, seasonID)

	var r []model.PlayerSeason
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PlayerSeason)
	}
	return r, args.Error(1)
}

func (db *DB) DeletePlayerSeason(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) GetRival(ctx context.Context, id string) (*model.Rival, error) {
	args := db.Called(ctx, id)

	var r *model.Rival
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Rival)
	}
	return r, args.Error(1)
}

func (db *DB) FindRival(ctx context.Context, dynastyID, opponent string) (*model.Rival, error) {
	args := db.Called(ctx, dynastyID, opponent)

	var r *model.Rival
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Rival)
	}
	return r, args.Error(1)
}

func (db *DB) ListRivals(ctx context.Context, dynastyID string) ([]model.Rival, error) {
	args := db.Called(ctx, dynastyID)

	var r []model.Rival
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Rival)
	}
	return r, args.Error(1)
}

func (db *DB) AddRival(ctx context.Context, r *model.Rival) error {
	args := db.Called(ctx, r)
	return args.Error(0)
}

func (db *DB) DeleteRival(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) AddKeyMoment(ctx context.Context, m *model.KeyMoment) error {
	args := db.Called(ctx, m)
	return args.Error(0)
}

func (db *DB) ListKeyMoments(ctx context.Context, rivalID string) ([]model.KeyMoment, error) {
	args := db.Called(ctx, rivalID)

	var r []model.KeyMoment
	if args.Get(0) != nil {
		r = args.Get(0).([]model.KeyMoment)
	}
	return r, args.Error(1)
}

func (db *DB) DeleteKeyMoment(ctx context.Context, rivalID string, year int, description string) error {
	args := db.Called(ctx, rivalID, year, description)
	return args.Error(0)
}

func (db *DB) SaveScoutingNote(ctx context.Context, n *model.ScoutingNote) error {
	args := db.Called(ctx, n)
	return args.Error(0)
}

func (db *DB) ListScoutingNotes(ctx context.Context, dynastyID string) ([]model.ScoutingNote, error) {
	args := db.Called(ctx, dynastyID)

	var r []model.ScoutingNote
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ScoutingNote)
	}
	return r, args.Error(1)
}

func (db *DB) DeleteScoutingNote(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) SavePrestigeRating(ctx context.Context, p *model.PrestigeRating) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) ListPrestigeRatings(ctx context.Context, dynastyID string) ([]model.PrestigeRating, error) {
	args := db.Called(ctx, dynastyID)

	var r []model.PrestigeRating
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PrestigeRating)
	}
	return r, args.Error(1)
}

func (db *DB) AddTransfer(ctx context.Context, t *model.TransferPortalEntry) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) ListSeasonTransfers(ctx context.Context, seasonID string) ([]model.TransferPortalEntry, error) {
	args := db.Called(ctx, seasonID)

	var r []model.TransferPortalEntry
	if args.Get(0) != nil {
		r = args.Get(0).([]model.TransferPortalEntry)
	}
	return r, args.Error(1)
}

func (db *DB) ListDynastyTransfers(ctx context.Context, dynastyID string) ([]model.TransferPortalEntry, error) {
	args := db.Called(ctx, dynastyID)

	var r []model.TransferPortalEntry
	if args.Get(0) != nil {
		r = args.Get(0).([]model.TransferPortalEntry)
	}
	return r, args.Error(1)
}

func (db *DB) DeleteTransfer(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ImportDynasty(ctx context.Context, bundle *model.DynastyExport) (string, error) {
	args := db.Called(ctx, bundle)
	return args.String(0), args.Error(1)
}
