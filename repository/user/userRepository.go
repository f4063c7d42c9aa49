package userrepo

import (
	"context"
	"database/sql"

	"rentkaro/model"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByIdentifier(ctx context.Context, email, phone *string) (*model.User, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO users(email, phone, password_hash)
		VALUES ($1,$2,$3)
		RETURNING id, created_at`,
		u.Email, u.Phone, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
}

// ByIdentifier matches on whichever identifier is present. Email lookup is
// case-insensitive; phone is exact.
func (r *repo) ByIdentifier(ctx context.Context, email, phone *string) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, phone, password_hash, created_at
		FROM users
		WHERE ($1::text IS NOT NULL AND lower(email) = lower($1))
		   OR ($2::text IS NOT NULL AND phone = $2)`,
		email, phone,
	).Scan(&u.ID, &u.Email, &u.Phone, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}
