package model

import "time"

type RentalStatus string

const (
	RentalOngoing   RentalStatus = "Ongoing"
	RentalCompleted RentalStatus = "Completed"
)

func ValidStatus(s string) bool {
	return s == string(RentalOngoing) || s == string(RentalCompleted)
}

type RentalType string

const (
	RentalRented RentalType = "Rented"
	RentalLent   RentalType = "Lent"
)

// NormalizeType coerces anything that is not exactly Rented/Lent to Rented.
func NormalizeType(t string) RentalType {
	if t == string(RentalLent) {
		return RentalLent
	}
	return RentalRented
}

type Rental struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"-"`
	ItemID    string       `json:"itemId"`
	Status    RentalStatus `json:"status"`
	Type      RentalType   `json:"type"`
	PaymentID *string      `json:"paymentId,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

type CreateRentalReq struct {
	ItemID    string `json:"itemId" validate:"required,max=100"`
	Type      string `json:"type"`
	PaymentID string `json:"paymentId" validate:"omitempty,max=100"`
}

type UpdateRentalReq struct {
	ID     int64  `json:"id" validate:"required,gt=0"`
	Status string `json:"status" validate:"required"`
}
