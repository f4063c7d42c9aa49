package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SignupReq represents the signup payload. Email and phone are both
// optional but at least one must be present; the service enforces that
// since validator tags cannot express it.
// swagger:model SignupReq
type SignupReq struct {
	Email    string `json:"email" validate:"omitempty,max=254"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	// Length is checked by the auth service so short passwords get their
	// own error message.
	Password string `json:"password" validate:"required"`
}

// LoginReq represents the login payload.
// swagger:model LoginReq
type LoginReq struct {
	Email    string `json:"email" validate:"omitempty,max=254"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Password string `json:"password" validate:"required"`
}
