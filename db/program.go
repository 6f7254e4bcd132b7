package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/miraclmoore/dynasty-os-sub001/model"
)

func (db *postgresDB) SavePrestigeRating(ctx context.Context, p *model.PrestigeRating) error {
	const query = `INSERT INTO prestige_ratings (
		id, dynasty_id, year, rating, recruiting_rank, created, updated
	) VALUES (
		@id, @dynastyID, @year, @rating, @recruitingRank, @now, @now
	)
	ON CONFLICT (dynasty_id, year)
		DO UPDATE SET rating=EXCLUDED.rating,
			recruiting_rank=EXCLUDED.recruiting_rank,
			updated=EXCLUDED.updated`

	if p.ID == "" {
		p.ID = db.newID()
	}
	now := db.now()

	args := pgx.NamedArgs{
		"id":             p.ID,
		"dynastyID":      p.DynastyID,
		"year":           p.Year,
		"rating":         p.Rating,
		"recruitingRank": nullInt(p.RecruitingRank),
		"now":            now,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving prestige rating: %w", err)
	}
	return nil
}

func (db *postgresDB) ListPrestigeRatings(ctx context.Context, dynastyID string) ([]model.PrestigeRating, error) {
	const query = `SELECT id, dynasty_id, year, rating, recruiting_rank, created, updated
		FROM prestige_ratings WHERE dynasty_id=@dynastyID ORDER BY year`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"dynastyID": dynastyID})
	if err != nil {
		return nil, fmt.Errorf("error listing prestige ratings: %w", err)
	}
	defer rows.Close()

	results := make([]model.PrestigeRating, 0, 8)
	for rows.Next() {
		var p model.PrestigeRating
		var rank sql.NullInt32
		var created, updated pgtype.Timestamptz
		if err := rows.Scan(&p.ID, &p.DynastyID, &p.Year, &p.Rating, &rank, &created, &updated); err != nil {
			return nil, err
		}
		p.RecruitingRank = intOrNil(rank)
		p.Created = created.Time
		p.Updated = updated.Time
		results = append(results, p)
	}
	return results, rows.Err()
}

const transferColumns = `id, dynasty_id, season_id, player_name, position,
	entry_type, star_rating, school, created, updated`

func (db *postgresDB) AddTransfer(ctx context.Context, t *model.TransferPortalEntry) error {
	const query = `INSERT INTO transfer_portal (
		id, dynasty_id, season_id, player_name, position, entry_type, star_rating, school, created, updated
	) VALUES (
		@id, @dynastyID, @seasonID, @playerName, @position, @entryType, @starRating, @school, @now, @now
	)`

	t.ID = db.newID()
	now := db.now()
	t.Created = now.Time
	t.Updated = now.Time

	args := pgx.NamedArgs{
		"id":         t.ID,
		"dynastyID":  t.DynastyID,
		"seasonID":   t.SeasonID,
		"playerName": t.PlayerName,
		"position":   t.Position,
		"entryType":  string(t.EntryType),
		"starRating": nullInt(t.StarRating),
		"school":     t.School,
		"now":        now,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting transfer: %w", err)
	}
	return nil
}

func (db *postgresDB) ListSeasonTransfers(ctx context.Context, seasonID string) ([]model.TransferPortalEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM transfer_portal WHERE season_id=@seasonID ORDER BY created`, transferColumns)
	return db.queryTransfers(ctx, query, pgx.NamedArgs{"seasonID": seasonID})
}

func (db *postgresDB) ListDynastyTransfers(ctx context.Context, dynastyID string) ([]model.TransferPortalEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM transfer_portal WHERE dynasty_id=@dynastyID ORDER BY created`, transferColumns)
	return db.queryTransfers(ctx, query, pgx.NamedArgs{"dynastyID": dynastyID})
}

func (db *postgresDB) queryTransfers(ctx context.Context, query string, args pgx.NamedArgs) ([]model.TransferPortalEntry, error) {
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing transfers: %w", err)
	}
	defer rows.Close()

	results := make([]model.TransferPortalEntry, 0, 8)
	for rows.Next() {
		var t model.TransferPortalEntry
		var entryType string
		var stars sql.NullInt32
		var created, updated pgtype.Timestamptz
		err := rows.Scan(&t.ID, &t.DynastyID, &t.SeasonID, &t.PlayerName, &t.Position,
			&entryType, &stars, &t.School, &created, &updated)
		if err != nil {
			return nil, err
		}
		t.EntryType = model.ParseTransferType(entryType)
		t.StarRating = intOrNil(stars)
		t.Created = created.Time
		t.Updated = updated.Time
		results = append(results, t)
	}
	return results, rows.Err()
}

func (db *postgresDB) DeleteTransfer(ctx context.Context, id string) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM transfer_portal WHERE id=@id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting transfer %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
