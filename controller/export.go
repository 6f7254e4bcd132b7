package controller

import (
	"context"
	"fmt"

	"github.com/miraclmoore/dynasty-os-sub001/model"
)

// ExportDynasty collects one dynasty and all of its children into a single
// document. The dynasty must exist; everything else may legitimately be
// empty.
func (c *controller) ExportDynasty(ctx context.Context, id string) (*model.DynastyExport, error) {
	d, err := c.db.GetDynasty(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up dynasty for export: %w", err)
	}

	bundle := &model.DynastyExport{
		Version: model.ExportVersion,
		Dynasty: *d,
	}

	if bundle.Seasons, err = c.db.ListSeasons(ctx, id); err != nil {
		return nil, fmt.Errorf("error exporting seasons: %w", err)
	}
	if bundle.Games, err = c.db.ListDynastyGames(ctx, id); err != nil {
		return nil, fmt.Errorf("error exporting games: %w", err)
	}
	if bundle.Players, err = c.db.ListPlayers(ctx, id); err != nil {
		return nil, fmt.Errorf("error exporting players: %w", err)
	}
	if bundle.Stats, err = c.db.ListDynastyPlayerSeasons(ctx, id); err != nil {
		return nil, fmt.Errorf("error exporting player seasons: %w", err)
	}
	if bundle.Rivals, err = c.db.ListRivals(ctx, id); err != nil {
		return nil, fmt.Errorf("error exporting rivals: %w", err)
	}
	for _, r := range bundle.Rivals {
		moments, err := c.db.ListKeyMoments(ctx, r.ID)
		if err != nil {
			return nil, fmt.Errorf("error exporting key moments: %w", err)
		}
		bundle.Moments = append(bundle.Moments, moments...)
	}
	if bundle.Notes, err = c.db.ListScoutingNotes(ctx, id); err != nil {
		return nil, fmt.Errorf("error exporting scouting notes: %w", err)
	}
	if bundle.Prestige, err = c.db.ListPrestigeRatings(ctx, id); err != nil {
		return nil, fmt.Errorf("error exporting prestige ratings: %w", err)
	}
	if bundle.Portal, err = c.db.ListDynastyTransfers(ctx, id); err != nil {
		return nil, fmt.Errorf("error exporting transfers: %w", err)
	}

	return bundle, nil
}

// ImportDynasty validates a bundle and recreates it under fresh ids. The
// whole import runs in one transaction in the store layer.
func (c *controller) ImportDynasty(ctx context.Context, bundle *model.DynastyExport) (string, error) {
	if bundle == nil {
		return "", fmt.Errorf("nothing to import")
	}
	if bundle.Version != model.ExportVersion {
		return "", fmt.Errorf("unsupported export version %d", bundle.Version)
	}
	if bundle.Dynasty.Team == "" {
		return "", fmt.Errorf("export has no dynasty team")
	}
	if bundle.Dynasty.Sport == model.SPORT_UNKNOWN {
		return "", fmt.Errorf("export has an unsupported sport")
	}

	return c.db.ImportDynasty(ctx, bundle)
}
