package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// progressRepo implements progress.Store on the completed_levels table.
type progressRepo struct {
	drv *entsql.Driver
}

func (r *progressRepo) Load(ctx context.Context) ([]int, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("level_id").
		From(entsql.Table(completedLevelsTable)).
		OrderBy("level_id").
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query completed levels: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan completed level: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read completed levels: %w", err)
	}
	return ids, nil
}

// Save makes the stored set equal to levelIDs. Rows for ids already stored
// keep their first completion time.
func (r *progressRepo) Save(ctx context.Context, levelIDs []int) (err error) {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	b := entsql.Dialect(dialect.SQLite)

	keep := make([]any, len(levelIDs))
	for i, id := range levelIDs {
		keep[i] = id
	}
	del := b.Delete(completedLevelsTable)
	if len(keep) > 0 {
		del = del.Where(entsql.NotIn("level_id", keep...))
	}
	query, args := del.Query()
	if err = tx.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("prune completed levels: %w", err)
	}

	now := time.Now().UTC()
	for _, id := range levelIDs {
		query, args := b.Insert(completedLevelsTable).
			Columns("level_id", "completed_at").
			Values(id, now).
			OnConflict(entsql.ConflictColumns("level_id"), entsql.DoNothing()).
			Query()
		if err = tx.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("insert completed level %d: %w", id, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Clear removes all stored progress.
func (r *progressRepo) Clear(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).Delete(completedLevelsTable).Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("clear completed levels: %w", err)
	}
	return nil
}
