package rentalsvc

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"rentkaro/model"
	rentalrepo "rentkaro/repository/rental"
)

type ErrCode string

const (
	ErrNotFound  ErrCode = "NOT_FOUND"
	ErrBadItem   ErrCode = "BAD_ITEM"
	ErrBadStatus ErrCode = "BAD_STATUS"
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

const maxItemIDLen = 100

type Service interface {
	List(ctx context.Context, userID int64) ([]model.Rental, error)
	Get(ctx context.Context, userID, id int64) (*model.Rental, error)

	// Create persists one rental. Status is always Ongoing; the caller
	// has no way to smuggle another initial status through.
	Create(ctx context.Context, userID int64, req model.CreateRentalReq) (int64, error)

	// UpdateStatus is the only mutation path for status. Completed is
	// not terminal at the data layer: moving back to Ongoing is allowed.
	UpdateStatus(ctx context.Context, userID, id int64, status string) error
}

type service struct{ r rentalrepo.Repo }

func New(r rentalrepo.Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, userID int64) ([]model.Rental, error) {
	return s.r.ListByUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, userID, id int64) (*model.Rental, error) {
	rt, err := s.r.ByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return rt, nil
}

func (s *service) Create(ctx context.Context, userID int64, req model.CreateRentalReq) (int64, error) {
	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" || len(itemID) > maxItemIDLen {
		return 0, makeErr(ErrBadItem)
	}
	var paymentID *string
	if req.PaymentID != "" {
		paymentID = &req.PaymentID
	}
	return s.r.Insert(ctx, userID, itemID, model.NormalizeType(req.Type), paymentID)
}

func (s *service) UpdateStatus(ctx context.Context, userID, id int64, status string) error {
	if !model.ValidStatus(status) {
		return makeErr(ErrBadStatus)
	}
	err := s.r.UpdateStatus(ctx, userID, id, model.RentalStatus(status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	return nil
}
