package rentalrepo

import (
	"context"
	"database/sql"

	"rentkaro/model"
)

type Repo interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Rental, error)
	ByID(ctx context.Context, userID, id int64) (*model.Rental, error)

	// Insert always writes status Ongoing; callers cannot choose it.
	Insert(ctx context.Context, userID int64, itemID string, typ model.RentalType, paymentID *string) (int64, error)
	InsertTx(ctx context.Context, tx *sql.Tx, userID int64, itemID string, typ model.RentalType, paymentID *string) (int64, error)

	UpdateStatus(ctx context.Context, userID, id int64, status model.RentalStatus) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

const rentalCols = `id, user_id, item_id, status, type, payment_id, created_at`

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]model.Rental, error) {
	const q = `
		SELECT ` + rentalCols + `
		FROM rentals
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Rental
	for rows.Next() {
		var rt model.Rental
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.ItemID, &rt.Status, &rt.Type, &rt.PaymentID, &rt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, userID, id int64) (*model.Rental, error) {
	const q = `
		SELECT ` + rentalCols + `
		FROM rentals
		WHERE id = $1 AND user_id = $2`
	rt := &model.Rental{}
	err := r.db.QueryRowContext(ctx, q, id, userID).
		Scan(&rt.ID, &rt.UserID, &rt.ItemID, &rt.Status, &rt.Type, &rt.PaymentID, &rt.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

const insertRentalQ = `
	INSERT INTO rentals (user_id, item_id, status, type, payment_id)
	VALUES ($1, $2, 'Ongoing', $3, $4)
	RETURNING id`

func (r *repo) Insert(ctx context.Context, userID int64, itemID string, typ model.RentalType, paymentID *string) (int64, error) {
	var id int64
	if err := r.db.QueryRowContext(ctx, insertRentalQ, userID, itemID, typ, paymentID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) InsertTx(ctx context.Context, tx *sql.Tx, userID int64, itemID string, typ model.RentalType, paymentID *string) (int64, error) {
	var id int64
	if err := tx.QueryRowContext(ctx, insertRentalQ, userID, itemID, typ, paymentID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) UpdateStatus(ctx context.Context, userID, id int64, status model.RentalStatus) error {
	const q = `
		UPDATE rentals
		SET status = $1
		WHERE id = $2 AND user_id = $3`
	res, err := r.db.ExecContext(ctx, q, status, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
