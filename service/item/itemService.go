package itemsvc

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"rentkaro/model"
	itemrepo "rentkaro/repository/item"
)

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrBadInput ErrCode = "BAD_INPUT"
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

type Service interface {
	List(ctx context.Context) ([]model.Item, error)
	Detail(ctx context.Context, id int64) (*model.Item, error)
	Create(ctx context.Context, ownerID int64, req model.CreateItemReq) (int64, error)
	Update(ctx context.Context, ownerID, id int64, req model.UpdateItemReq) error
	Delete(ctx context.Context, ownerID, id int64) error
}

type service struct{ r itemrepo.Repo }

func New(r itemrepo.Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Item, error) {
	return s.r.List(ctx)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return it, nil
}

func (s *service) Create(ctx context.Context, ownerID int64, req model.CreateItemReq) (int64, error) {
	if strings.TrimSpace(req.Name) == "" || req.PricePerDay <= 0 {
		return 0, makeErr(ErrBadInput)
	}
	it := &model.Item{
		Name:           strings.TrimSpace(req.Name),
		Image:          req.Image,
		PricePerDay:    req.PricePerDay,
		Category:       req.Category,
		AvailableDates: req.AvailableDates,
		OwnerContact:   req.OwnerContact,
		OwnerAddress:   req.OwnerAddress,
		Description:    req.Description,
		Rating:         5.0,
		OwnerID:        &ownerID,
	}
	return s.r.Create(ctx, it)
}

// authorize resolves the row's owner and compares with the caller. Both
// a missing row and someone else's row come back as NOT_FOUND so callers
// cannot probe for existence.
func (s *service) authorize(ctx context.Context, ownerID, id int64) error {
	owner, err := s.r.OwnerOf(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	if owner == nil || *owner != ownerID {
		return makeErr(ErrNotFound)
	}
	return nil
}

func (s *service) Update(ctx context.Context, ownerID, id int64, req model.UpdateItemReq) error {
	if req.PricePerDay != nil && *req.PricePerDay <= 0 {
		return makeErr(ErrBadInput)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return makeErr(ErrBadInput)
	}
	if err := s.authorize(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.r.Update(ctx, id, req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *service) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.authorize(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	return nil
}
