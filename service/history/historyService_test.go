package historysvc

import (
	"context"
	"strings"
	"testing"

	"rentkaro/model"
	historyrepo "rentkaro/repository/history"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	insertFn func(ctx context.Context, userID int64, query, itemID *string) (int64, error)
	listFn   func(ctx context.Context, userID int64) ([]model.HistoryEntry, error)
}

var _ historyrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) Insert(ctx context.Context, userID int64, query, itemID *string) (int64, error) {
	return m.insertFn(ctx, userID, query, itemID)
}

func (m *mockRepo) ListByUser(ctx context.Context, userID int64) ([]model.HistoryEntry, error) {
	return m.listFn(ctx, userID)
}

func TestAdd_StoresFields(t *testing.T) {
	var gotQuery, gotItem *string
	m := &mockRepo{
		insertFn: func(ctx context.Context, userID int64, query, itemID *string) (int64, error) {
			gotQuery, gotItem = query, itemID
			return 1, nil
		},
	}
	svc := New(m)

	id, err := svc.Add(context.Background(), 1, model.AddHistoryReq{Query: "drill", ItemID: "5"})
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	require.NotNil(t, gotQuery)
	require.Equal(t, "drill", *gotQuery)
	require.NotNil(t, gotItem)
	require.Equal(t, "5", *gotItem)
}

func TestAdd_OverlongFieldsDroppedToNull(t *testing.T) {
	var gotQuery, gotItem *string
	m := &mockRepo{
		insertFn: func(ctx context.Context, userID int64, query, itemID *string) (int64, error) {
			gotQuery, gotItem = query, itemID
			return 2, nil
		},
	}
	svc := New(m)

	// the entry is still written, just with NULL fields
	id, err := svc.Add(context.Background(), 1, model.AddHistoryReq{
		Query:  strings.Repeat("q", 501),
		ItemID: strings.Repeat("i", 101),
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), id)
	require.Nil(t, gotQuery)
	require.Nil(t, gotItem)
}

func TestAdd_EmptyFieldsAreNull(t *testing.T) {
	var gotQuery, gotItem *string
	m := &mockRepo{
		insertFn: func(ctx context.Context, userID int64, query, itemID *string) (int64, error) {
			gotQuery, gotItem = query, itemID
			return 3, nil
		},
	}
	svc := New(m)

	_, err := svc.Add(context.Background(), 1, model.AddHistoryReq{})
	require.NoError(t, err)
	require.Nil(t, gotQuery)
	require.Nil(t, gotItem)
}
