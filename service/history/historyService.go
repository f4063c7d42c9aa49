package historysvc

import (
	"context"

	"rentkaro/model"
	historyrepo "rentkaro/repository/history"
)

const (
	maxQueryLen  = 500
	maxItemIDLen = 100
)

type Service interface {
	Add(ctx context.Context, userID int64, req model.AddHistoryReq) (int64, error)
	List(ctx context.Context, userID int64) ([]model.HistoryEntry, error)
}

type service struct{ r historyrepo.Repo }

func New(r historyrepo.Repo) Service { return &service{r: r} }

// Add records one browse action. Over-length values are dropped to NULL
// rather than rejected; the entry itself is always written.
func (s *service) Add(ctx context.Context, userID int64, req model.AddHistoryReq) (int64, error) {
	var query, itemID *string
	if req.Query != "" && len(req.Query) <= maxQueryLen {
		query = &req.Query
	}
	if req.ItemID != "" && len(req.ItemID) <= maxItemIDLen {
		itemID = &req.ItemID
	}
	return s.r.Insert(ctx, userID, query, itemID)
}

func (s *service) List(ctx context.Context, userID int64) ([]model.HistoryEntry, error) {
	return s.r.ListByUser(ctx, userID)
}
