package itemrepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"rentkaro/model"
)

type Repo interface {
	List(ctx context.Context) ([]model.Item, error)
	ByID(ctx context.Context, id int64) (*model.Item, error)
	OwnerOf(ctx context.Context, id int64) (*int64, error)
	Create(ctx context.Context, it *model.Item) (int64, error)
	Update(ctx context.Context, id int64, req model.UpdateItemReq) error
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

const itemCols = `id, name, image, price_per_day, category, available_dates,
	owner_contact, owner_address, description, rating, owner_id, created_at`

func scanItem(row interface{ Scan(...any) error }, it *model.Item) error {
	return row.Scan(
		&it.ID, &it.Name, &it.Image, &it.PricePerDay, &it.Category,
		&it.AvailableDates, &it.OwnerContact, &it.OwnerAddress,
		&it.Description, &it.Rating, &it.OwnerID, &it.CreatedAt,
	)
}

func (r *repo) List(ctx context.Context) ([]model.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+itemCols+`
		FROM items
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Item
	for rows.Next() {
		var it model.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Item, error) {
	it := &model.Item{}
	err := scanItem(r.db.QueryRowContext(ctx, `
		SELECT `+itemCols+`
		FROM items
		WHERE id = $1`, id), it)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *repo) OwnerOf(ctx context.Context, id int64) (*int64, error) {
	var owner *int64
	err := r.db.QueryRowContext(ctx,
		`SELECT owner_id FROM items WHERE id = $1`, id,
	).Scan(&owner)
	if err != nil {
		return nil, err
	}
	return owner, nil
}

func (r *repo) Create(ctx context.Context, it *model.Item) (int64, error) {
	const q = `
		INSERT INTO items (name, image, price_per_day, category, available_dates,
			owner_contact, owner_address, description, rating, owner_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id`
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		it.Name, it.Image, it.PricePerDay, it.Category, it.AvailableDates,
		it.OwnerContact, it.OwnerAddress, it.Description, it.Rating, it.OwnerID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update writes only the fields present in req. A request with no fields
// set is a no-op.
func (r *repo) Update(ctx context.Context, id int64, req model.UpdateItemReq) error {
	sets := make([]string, 0, 8)
	args := make([]any, 0, 9)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Image != nil {
		add("image", *req.Image)
	}
	if req.PricePerDay != nil {
		add("price_per_day", *req.PricePerDay)
	}
	if req.Category != nil {
		add("category", *req.Category)
	}
	if req.AvailableDates != nil {
		add("available_dates", *req.AvailableDates)
	}
	if req.OwnerContact != nil {
		add("owner_contact", *req.OwnerContact)
	}
	if req.OwnerAddress != nil {
		add("owner_address", *req.OwnerAddress)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE items SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
