package model

import "time"

type Item struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Image          string    `json:"image"`
	PricePerDay    float64   `json:"pricePerDay"`
	Category       string    `json:"category"`
	AvailableDates string    `json:"availableDates"`
	OwnerContact   string    `json:"ownerContact"`
	OwnerAddress   string    `json:"ownerAddress"`
	Description    string    `json:"description"`
	Rating         float64   `json:"rating"`
	OwnerID        *int64    `json:"ownerId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CreateItemReq struct {
	Name           string  `json:"name" validate:"required,max=200"`
	Image          string  `json:"image" validate:"omitempty,max=2000"`
	PricePerDay    float64 `json:"pricePerDay" validate:"required,gt=0"`
	Category       string  `json:"category" validate:"omitempty,max=100"`
	AvailableDates string  `json:"availableDates" validate:"omitempty,max=200"`
	OwnerContact   string  `json:"ownerContact" validate:"omitempty,max=200"`
	OwnerAddress   string  `json:"ownerAddress" validate:"omitempty,max=500"`
	Description    string  `json:"description" validate:"omitempty,max=2000"`
}

// UpdateItemReq carries a partial update: nil fields are left untouched.
type UpdateItemReq struct {
	Name           *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Image          *string  `json:"image" validate:"omitempty,max=2000"`
	PricePerDay    *float64 `json:"pricePerDay" validate:"omitempty,gt=0"`
	Category       *string  `json:"category" validate:"omitempty,max=100"`
	AvailableDates *string  `json:"availableDates" validate:"omitempty,max=200"`
	OwnerContact   *string  `json:"ownerContact" validate:"omitempty,max=200"`
	OwnerAddress   *string  `json:"ownerAddress" validate:"omitempty,max=500"`
	Description    *string  `json:"description" validate:"omitempty,max=2000"`
}
