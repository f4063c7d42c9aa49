package model

import "time"

type HistoryEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Query     *string   `json:"query"`
	ItemID    *string   `json:"itemId"`
	CreatedAt time.Time `json:"createdAt"`
}

type AddHistoryReq struct {
	Query  string `json:"query"`
	ItemID string `json:"itemId"`
}
