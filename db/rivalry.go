package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/miraclmoore/dynasty-os-sub001/model"
)

const rivalColumns = `id, dynasty_id, opponent, label, created, updated`

func (db *postgresDB) GetRival(ctx context.Context, id string) (*model.Rival, error) {
	query := fmt.Sprintf(`SELECT %s FROM rivals WHERE id=@id`, rivalColumns)
	return db.queryRival(ctx, query, pgx.NamedArgs{"id": id})
}

func (db *postgresDB) FindRival(ctx context.Context, dynastyID, opponent string) (*model.Rival, error) {
	query := fmt.Sprintf(`SELECT %s FROM rivals WHERE dynasty_id=@dynastyID AND opponent=@opponent`, rivalColumns)
	return db.queryRival(ctx, query, pgx.NamedArgs{"dynastyID": dynastyID, "opponent": opponent})
}

func (db *postgresDB) queryRival(ctx context.Context, query string, args pgx.NamedArgs) (*model.Rival, error) {
	row := db.pool.QueryRow(ctx, query, args)
	r, err := scanRival(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRivalNotFound
		}
		return nil, fmt.Errorf("error scanning rival: %w", err)
	}
	return r, nil
}

func (db *postgresDB) ListRivals(ctx context.Context, dynastyID string) ([]model.Rival, error) {
	query := fmt.Sprintf(`SELECT %s FROM rivals WHERE dynasty_id=@dynastyID ORDER BY opponent`, rivalColumns)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"dynastyID": dynastyID})
	if err != nil {
		return nil, fmt.Errorf("error listing rivals: %w", err)
	}
	defer rows.Close()

	results := make([]model.Rival, 0, 8)
	for rows.Next() {
		r, err := scanRival(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, rows.Err()
}

func (db *postgresDB) AddRival(ctx context.Context, r *model.Rival) error {
	const query = `INSERT INTO rivals (
		id, dynasty_id, opponent, label, created, updated
	) VALUES (
		@id, @dynastyID, @opponent, @label, @now, @now
	)`

	r.ID = db.newID()
	now := db.now()
	r.Created = now.Time
	r.Updated = now.Time

	args := pgx.NamedArgs{
		"id":        r.ID,
		"dynastyID": r.DynastyID,
		"opponent":  r.Opponent,
		"label":     r.Label,
		"now":       now,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting rival: %w", err)
	}
	return nil
}

func (db *postgresDB) DeleteRival(ctx context.Context, id string) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"id": id}
	if _, err := tx.Exec(ctx, `DELETE FROM key_moments WHERE rival_id=@id`, args); err != nil {
		return fmt.Errorf("error deleting rival key moments: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM rivals WHERE id=@id`, args)
	if err != nil {
		return fmt.Errorf("error deleting rival %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRivalNotFound
	}
	return tx.Commit(ctx)
}

func (db *postgresDB) AddKeyMoment(ctx context.Context, m *model.KeyMoment) error {
	const query = `INSERT INTO key_moments (
		id, rival_id, year, description, created, updated
	) VALUES (
		@id, @rivalID, @year, @description, @now, @now
	)`

	m.ID = db.newID()
	now := db.now()
	m.Created = now.Time
	m.Updated = now.Time

	args := pgx.NamedArgs{
		"id":          m.ID,
		"rivalID":     m.RivalID,
		"year":        m.Year,
		"description": m.Description,
		"now":         now,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting key moment: %w", err)
	}
	return nil
}

func (db *postgresDB) ListKeyMoments(ctx context.Context, rivalID string) ([]model.KeyMoment, error) {
	const query = `SELECT id, rival_id, year, description, created, updated
		FROM key_moments WHERE rival_id=@rivalID ORDER BY year DESC, created`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"rivalID": rivalID})
	if err != nil {
		return nil, fmt.Errorf("error listing key moments: %w", err)
	}
	defer rows.Close()

	results := make([]model.KeyMoment, 0, 8)
	for rows.Next() {
		var m model.KeyMoment
		var created, updated pgtype.Timestamptz
		if err := rows.Scan(&m.ID, &m.RivalID, &m.Year, &m.Description, &created, &updated); err != nil {
			return nil, err
		}
		m.Created = created.Time
		m.Updated = updated.Time
		results = append(results, m)
	}
	return results, rows.Err()
}

func (db *postgresDB) DeleteKeyMoment(ctx context.Context, rivalID string, year int, description string) error {
	const query = `DELETE FROM key_moments
		WHERE rival_id=@rivalID AND year=@year AND description=@description`

	args := pgx.NamedArgs{
		"rivalID":     rivalID,
		"year":        year,
		"description": description,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error deleting key moment: %w", err)
	}
	return nil
}

func (db *postgresDB) SaveScoutingNote(ctx context.Context, n *model.ScoutingNote) error {
	const query = `INSERT INTO scouting_notes (
		id, dynasty_id, opponent, note, created, updated
	) VALUES (
		@id, @dynastyID, @opponent, @note, @now, @now
	)
	ON CONFLICT (dynasty_id, opponent)
		DO UPDATE SET note=EXCLUDED.note, updated=EXCLUDED.updated`

	if n.ID == "" {
		n.ID = db.newID()
	}
	now := db.now()

	args := pgx.NamedArgs{
		"id":        n.ID,
		"dynastyID": n.DynastyID,
		"opponent":  n.Opponent,
		"note":      n.Note,
		"now":       now,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving scouting note: %w", err)
	}
	return nil
}

func (db *postgresDB) ListScoutingNotes(ctx context.Context, dynastyID string) ([]model.ScoutingNote, error) {
	const query = `SELECT id, dynasty_id, opponent, note, created, updated
		FROM scouting_notes WHERE dynasty_id=@dynastyID ORDER BY opponent`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"dynastyID": dynastyID})
	if err != nil {
		return nil, fmt.Errorf("error listing scouting notes: %w", err)
	}
	defer rows.Close()

	results := make([]model.ScoutingNote, 0, 8)
	for rows.Next() {
		var n model.ScoutingNote
		var created, updated pgtype.Timestamptz
		if err := rows.Scan(&n.ID, &n.DynastyID, &n.Opponent, &n.Note, &created, &updated); err != nil {
			return nil, err
		}
		n.Created = created.Time
		n.Updated = updated.Time
		results = append(results, n)
	}
	return results, rows.Err()
}

func (db *postgresDB) DeleteScoutingNote(ctx context.Context, id string) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM scouting_notes WHERE id=@id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting scouting note %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRival(row pgx.Row) (*model.Rival, error) {
	var result model.Rival
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.DynastyID,
		&result.Opponent,
		&result.Label,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	result.Created = created.Time
	result.Updated = updated.Time
	return &result, nil
}
