package paymentsvc

import (
	"context"
	"errors"
	"math"

	paymentrepo "rentkaro/repository/payment"
)

var ErrBadAmount = errors.New("invalid amount")

type Service interface {
	// Pay charges the given amount and returns an opaque payment id.
	// Amounts must be finite and strictly positive.
	Pay(ctx context.Context, amount float64) (string, error)
}

type service struct{ p paymentrepo.Provider }

func New(p paymentrepo.Provider) Service { return &service{p: p} }

func (s *service) Pay(ctx context.Context, amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return "", ErrBadAmount
	}
	resp, err := s.p.Charge(paymentrepo.ChargeReq{
		Amount:      amount,
		Description: "rentkaro checkout",
	})
	if err != nil {
		return "", err
	}
	return resp.PaymentID, nil
}
