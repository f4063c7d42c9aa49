package historyrepo

import (
	"context"
	"database/sql"

	"rentkaro/model"
)

type Repo interface {
	Insert(ctx context.Context, userID int64, query, itemID *string) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]model.HistoryEntry, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Insert(ctx context.Context, userID int64, query, itemID *string) (int64, error) {
	const q = `
		INSERT INTO browse_history (user_id, query, item_id)
		VALUES ($1,$2,$3)
		RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, userID, query, itemID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]model.HistoryEntry, error) {
	const q = `
		SELECT id, user_id, query, item_id, created_at
		FROM browse_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.HistoryEntry
	for rows.Next() {
		var h model.HistoryEntry
		if err := rows.Scan(&h.ID, &h.UserID, &h.Query, &h.ItemID, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
