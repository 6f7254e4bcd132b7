package controller

import (
	"context"

	"github.com/itbasis/go-clock"
	"github.com/miraclmoore/dynasty-os-sub001/db"
	"github.com/miraclmoore/dynasty-os-sub001/model"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	CreateDynasty(ctx context.Context, d *model.Dynasty) (*model.Dynasty, error)
	GetDynasty(ctx context.Context, id string) (*model.Dynasty, error)
	ListDynasties(ctx context.Context) ([]model.Dynasty, error)
	UpdateDynasty(ctx context.Context, d *model.Dynasty) (*model.Dynasty, error)
	// Deletes the dynasty and everything under it in a single transaction.
	DeleteDynasty(ctx context.Context, id string) error

	CreateSeason(ctx context.Context, s *model.Season) (*model.Season, error)
	GetSeason(ctx context.Context, id string) (*model.Season, error)
	ListSeasons(ctx context.Context, dynastyID string) ([]model.Season, error)
	// UpdateSeason only touches the user-editable fields; the win/loss
	// record stays whatever the games say it is.
	UpdateSeason(ctx context.Context, s *model.Season) (*model.Season, error)
	DeleteSeason(ctx context.Context, id string) error

	// Game mutations recompute the owning season's record before they
	// return, so callers can re-read the season immediately afterward.
	CreateGame(ctx context.Context, g *model.Game) (*model.Game, error)
	GetGame(ctx context.Context, id string) (*model.Game, error)
	ListGames(ctx context.Context, seasonID string) ([]model.Game, error)
	UpdateGame(ctx context.Context, g *model.Game) (*model.Game, error)
	DeleteGame(ctx context.Context, id string) error

	CreatePlayer(ctx context.Context, p *model.Player) (*model.Player, error)
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	ListPlayers(ctx context.Context, dynastyID string) ([]model.Player, error)
	UpdatePlayer(ctx context.Context, p *model.Player) (*model.Player, error)
	DeletePlayer(ctx context.Context, id string) error

	SavePlayerSeason(ctx context.Context, ps *model.PlayerSeason) (*model.PlayerSeason, error)
	ListSeasonStats(ctx context.Context, seasonID string) ([]model.PlayerSeason, error)
	DeletePlayerSeason(ctx context.Context, id string) error

	// GetSeasonLeaders ranks players by one stat key within a dynasty, or
	// within a single season when seasonID is non-empty. Players whose key
	// is absent or zero are left out.
	GetSeasonLeaders(ctx context.Context, dynastyID, statKey, seasonID string, limit int) ([]model.LeaderboardEntry, error)
	// GetCareerLeaders aggregates every season a player has, summing or
	// weight-averaging per the sport's stat policy table.
	GetCareerLeaders(ctx context.Context, dynastyID, statKey string, limit int) ([]model.LeaderboardEntry, error)

	// GetHeadToHead builds one record per opponent the dynasty has played,
	// optionally restricted to seasons whose year falls in [startYear,
	// endYear]. Either bound may be nil.
	GetHeadToHead(ctx context.Context, dynastyID string, startYear, endYear *int) ([]model.HeadToHeadRecord, error)

	AddRival(ctx context.Context, dynastyID, opponent, label string) (*model.Rival, error)
	ListRivals(ctx context.Context, dynastyID string) ([]model.Rival, error)
	DeleteRival(ctx context.Context, id string) error
	// GetRivalrySummary combines a rival's head-to-head record with the
	// derived intensity and momentum scores and its key moments.
	GetRivalrySummary(ctx context.Context, rivalID string) (*model.RivalrySummary, error)
	AddKeyMoment(ctx context.Context, rivalID string, year int, description string) error
	DeleteKeyMoment(ctx context.Context, rivalID string, year int, description string) error

	SaveScoutingNote(ctx context.Context, dynastyID, opponent, note string) (*model.ScoutingNote, error)
	ListScoutingNotes(ctx context.Context, dynastyID string) ([]model.ScoutingNote, error)
	DeleteScoutingNote(ctx context.Context, id string) error

	SavePrestigeRating(ctx context.Context, p *model.PrestigeRating) (*model.PrestigeRating, error)
	ListPrestigeRatings(ctx context.Context, dynastyID string) ([]model.PrestigeRating, error)

	AddTransfer(ctx context.Context, t *model.TransferPortalEntry) (*model.TransferPortalEntry, error)
	ListSeasonTransfers(ctx context.Context, seasonID string) ([]model.TransferPortalEntry, error)
	DeleteTransfer(ctx context.Context, id string) error

	// CalculateTradeValue is a pure function over its input; it never
	// touches storage.
	CalculateTradeValue(in model.TradeValueInput) model.TradeValue

	ExportDynasty(ctx context.Context, id string) (*model.DynastyExport, error)
	ImportDynasty(ctx context.Context, bundle *model.DynastyExport) (string, error)
}

type controller struct {
	clock clock.Clock
	db    db.DB
}

func New(clock clock.Clock, db db.DB) (C, error) {
	c := &controller{
		clock: clock,
		db:    db,
	}
	return c, nil
}
