package checkoutsvc

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"

	"rentkaro/model"
	rentalrepo "rentkaro/repository/rental"
	paymentsvc "rentkaro/service/payment"
)

type ErrCode string

const (
	ErrBadCart ErrCode = "BAD_CART"
	ErrPayment ErrCode = "PAYMENT_FAILED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts the error code, "" for uncoded errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// The one recognized coupon: a fixed 10% off the subtotal. Unrecognized
// codes apply zero discount and are not an error.
const (
	couponSave10 = "SAVE10"
	save10Rate   = 0.10
)

const maxItemIDLen = 100

type Service interface {
	// Quote prices a cart without side effects.
	Quote(cart []model.CartLine, coupon string) model.Receipt

	// Checkout turns a cart into paid rental records: one payment for
	// the whole cart, then one rental per line, all in one transaction.
	// Payment failure aborts before any write; an insert failure rolls
	// back every line, so a paid-but-half-recorded state cannot occur.
	Checkout(ctx context.Context, userID int64, cart []model.CartLine, coupon string) (*model.Receipt, error)
}

type service struct {
	db  *sql.DB
	r   rentalrepo.Repo
	pay paymentsvc.Service
}

func New(db *sql.DB, r rentalrepo.Repo, pay paymentsvc.Service) Service {
	return &service{db: db, r: r, pay: pay}
}

func (s *service) Quote(cart []model.CartLine, coupon string) model.Receipt {
	var subtotal float64
	for _, line := range cart {
		subtotal += line.PricePerDay
	}
	var discount float64
	if strings.EqualFold(strings.TrimSpace(coupon), couponSave10) {
		discount = math.Round(subtotal * save10Rate)
	}
	return model.Receipt{
		RentalIDs: []int64{},
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     subtotal - discount,
	}
}

func checkLine(line model.CartLine) error {
	itemID := strings.TrimSpace(line.ItemID)
	if itemID == "" || len(itemID) > maxItemIDLen {
		return makeErr(ErrBadCart)
	}
	// A booking needs a chosen date and time slot before it can be paid.
	if strings.TrimSpace(line.Date) == "" || strings.TrimSpace(line.Slot) == "" {
		return makeErr(ErrBadCart)
	}
	return nil
}

func (s *service) Checkout(ctx context.Context, userID int64, cart []model.CartLine, coupon string) (*model.Receipt, error) {
	quote := s.Quote(cart, coupon)
	if len(cart) == 0 {
		// Empty cart is a no-op: no payment call, no writes.
		return &quote, nil
	}
	for _, line := range cart {
		if err := checkLine(line); err != nil {
			return nil, err
		}
	}

	paymentID, err := s.pay.Pay(ctx, quote.Total)
	if err != nil {
		if errors.Is(err, paymentsvc.ErrBadAmount) {
			return nil, makeErr(ErrBadCart)
		}
		return nil, makeErr(ErrPayment)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	ids := make([]int64, 0, len(cart))
	for _, line := range cart {
		var id int64
		id, err = s.r.InsertTx(ctx, tx, userID, strings.TrimSpace(line.ItemID), model.RentalRented, &paymentID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	quote.PaymentID = paymentID
	quote.RentalIDs = ids
	return &quote, nil
}
