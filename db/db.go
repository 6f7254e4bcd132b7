package db

import (
	"context"

	"github.com/miraclmoore/dynasty-os-sub001/model"
)

type DB interface {
	GetDynasty(ctx context.Context, id string) (*model.Dynasty, error)
	ListDynasties(ctx context.Context) ([]model.Dynasty, error)
	AddDynasty(ctx context.Context, d *model.Dynasty) error
	UpdateDynasty(ctx context.Context, d *model.Dynasty) error
	// DeleteDynasty removes the dynasty and every child row in one
	// transaction: games, player seasons, players, key moments, rivals,
	// scouting notes, prestige ratings, portal entries, seasons.
	DeleteDynasty(ctx context.Context, id string) error

	GetSeason(ctx context.Context, id string) (*model.Season, error)
	// Seasons are returned newest year first.
	ListSeasons(ctx context.Context, dynastyID string) ([]model.Season, error)
	AddSeason(ctx context.Context, s *model.Season) error
	UpdateSeason(ctx context.Context, s *model.Season) error
	// UpdateSeasonRecord overwrites only the derived win/loss fields.
	UpdateSeasonRecord(ctx context.Context, id string, wins, losses, confWins, confLosses int) error
	// DeleteSeason also removes the season's games, player seasons and
	// portal entries in one transaction.
	DeleteSeason(ctx context.Context, id string) error

	GetGame(ctx context.Context, id string) (*model.Game, error)
	ListSeasonGames(ctx context.Context, seasonID string) ([]model.Game, error)
	ListDynastyGames(ctx context.Context, dynastyID string) ([]model.Game, error)
	AddGame(ctx context.Context, g *model.Game) error
	UpdateGame(ctx context.Context, g *model.Game) error
	DeleteGame(ctx context.Context, id string) error

	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	ListPlayers(ctx context.Context, dynastyID string) ([]model.Player, error)
	AddPlayer(ctx context.Context, p *model.Player) error
	UpdatePlayer(ctx context.Context, p *model.Player) error
	// DeletePlayer also removes the player's stat lines.
	DeletePlayer(ctx context.Context, id string) error

	// SavePlayerSeason inserts or, when a row for the same (player, season)
	// pair already exists, replaces its stats.
	SavePlayerSeason(ctx context.Context, ps *model.PlayerSeason) error
	ListDynastyPlayerSeasons(ctx context.Context, dynastyID string) ([]model.PlayerSeason, error)
	ListSeasonPlayerSeasons(ctx context.Context, seasonID string) ([]model.PlayerSeason, error)
	DeletePlayerSeason(ctx context.Context, id string) error

	GetRival(ctx context.Context, id string) (*model.Rival, error)
	// FindRival looks up a rival by its (dynasty, opponent) pair and
	// returns ErrRivalNotFound when there is none.
	FindRival(ctx context.Context, dynastyID, opponent string) (*model.Rival, error)
	ListRivals(ctx context.Context, dynastyID string) ([]model.Rival, error)
	AddRival(ctx context.Context, r *model.Rival) error
	// DeleteRival also removes the rival's key moments.
	DeleteRival(ctx context.Context, id string) error

	AddKeyMoment(ctx context.Context, m *model.KeyMoment) error
	// Key moments are returned newest year first.
	ListKeyMoments(ctx context.Context, rivalID string) ([]model.KeyMoment, error)
	// DeleteKeyMoment matches by the exact (year, description) pair.
	DeleteKeyMoment(ctx context.Context, rivalID string, year int, description string) error

	SaveScoutingNote(ctx context.Context, n *model.ScoutingNote) error
	ListScoutingNotes(ctx context.Context, dynastyID string) ([]model.ScoutingNote, error)
	DeleteScoutingNote(ctx context.Context, id string) error

	SavePrestigeRating(ctx context.Context, p *model.PrestigeRating) error
	ListPrestigeRatings(ctx context.Context, dynastyID string) ([]model.PrestigeRating, error)

	AddTransfer(ctx context.Context, t *model.TransferPortalEntry) error
	ListSeasonTransfers(ctx context.Context, seasonID string) ([]model.TransferPortalEntry, error)
	ListDynastyTransfers(ctx context.Context, dynastyID string) ([]model.TransferPortalEntry, error)
	DeleteTransfer(ctx context.Context, id string) error

	// ImportDynasty recreates an exported dynasty under fresh ids, with all
	// foreign keys remapped, inside a single transaction. Returns the new
	// dynasty id.
	ImportDynasty(ctx context.Context, bundle *model.DynastyExport) (string, error)
}
