package model

// CartLine is one staged booking. Price is the client's snapshot of the
// item's per-day price at the time it was added; the checkout total is
// computed from these snapshots, not from the catalog.
type CartLine struct {
	ItemID      string  `json:"itemId" validate:"required,max=100"`
	Name        string  `json:"name" validate:"omitempty,max=200"`
	Image       string  `json:"image" validate:"omitempty,max=2000"`
	PricePerDay float64 `json:"pricePerDay" validate:"gte=0"`
	Date        string  `json:"date" validate:"required,max=50"`
	Slot        string  `json:"slot" validate:"required,max=50"`
}

type CheckoutReq struct {
	Cart   []CartLine `json:"cart" validate:"dive"`
	Coupon string     `json:"coupon" validate:"omitempty,max=50"`
}

// Receipt is the outcome of a checkout: one payment covering every
// created rental.
type Receipt struct {
	PaymentID string  `json:"paymentId,omitempty"`
	RentalIDs []int64 `json:"rentalIds"`
	Subtotal  float64 `json:"subtotal"`
	Discount  float64 `json:"discount"`
	Total     float64 `json:"total"`
}
