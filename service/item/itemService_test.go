package itemsvc

import (
	"context"
	"database/sql"
	"testing"

	"rentkaro/model"
	itemrepo "rentkaro/repository/item"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	listFn    func(ctx context.Context) ([]model.Item, error)
	byIDFn    func(ctx context.Context, id int64) (*model.Item, error)
	ownerOfFn func(ctx context.Context, id int64) (*int64, error)
	createFn  func(ctx context.Context, it *model.Item) (int64, error)
	updateFn  func(ctx context.Context, id int64, req model.UpdateItemReq) error
	deleteFn  func(ctx context.Context, id int64) error
}

var _ itemrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) List(ctx context.Context) ([]model.Item, error) { return m.listFn(ctx) }
func (m *mockRepo) ByID(ctx context.Context, id int64) (*model.Item, error) {
	return m.byIDFn(ctx, id)
}
func (m *mockRepo) OwnerOf(ctx context.Context, id int64) (*int64, error) {
	return m.ownerOfFn(ctx, id)
}
func (m *mockRepo) Create(ctx context.Context, it *model.Item) (int64, error) {
	return m.createFn(ctx, it)
}
func (m *mockRepo) Update(ctx context.Context, id int64, req model.UpdateItemReq) error {
	return m.updateFn(ctx, id, req)
}
func (m *mockRepo) Delete(ctx context.Context, id int64) error { return m.deleteFn(ctx, id) }

func TestCreate_Validation(t *testing.T) {
	svc := New(&mockRepo{})

	_, err := svc.Create(context.Background(), 1, model.CreateItemReq{Name: " ", PricePerDay: 10})
	require.Equal(t, ErrBadInput, Code(err))

	_, err = svc.Create(context.Background(), 1, model.CreateItemReq{Name: "Drill", PricePerDay: 0})
	require.Equal(t, ErrBadInput, Code(err))

	_, err = svc.Create(context.Background(), 1, model.CreateItemReq{Name: "Drill", PricePerDay: -5})
	require.Equal(t, ErrBadInput, Code(err))
}

func TestCreate_SetsOwnerAndDefaultRating(t *testing.T) {
	var got *model.Item
	m := &mockRepo{
		createFn: func(ctx context.Context, it *model.Item) (int64, error) {
			got = it
			return 3, nil
		},
	}
	svc := New(m)

	id, err := svc.Create(context.Background(), 42, model.CreateItemReq{Name: "Drill", PricePerDay: 15})
	require.NoError(t, err)
	require.Equal(t, int64(3), id)
	require.NotNil(t, got.OwnerID)
	require.Equal(t, int64(42), *got.OwnerID)
	require.Equal(t, 5.0, got.Rating)
}

func TestUpdate_OwnershipGate(t *testing.T) {
	owner := int64(1)
	m := &mockRepo{
		ownerOfFn: func(ctx context.Context, id int64) (*int64, error) {
			return &owner, nil
		},
		updateFn: func(ctx context.Context, id int64, req model.UpdateItemReq) error {
			t.Fatal("must not update someone else's item")
			return nil
		},
	}
	svc := New(m)

	name := "New name"
	// user 2 attacking user 1's item: not-found, never a permission error
	err := svc.Update(context.Background(), 2, 9, model.UpdateItemReq{Name: &name})
	require.Equal(t, ErrNotFound, Code(err))
}

func TestUpdate_MissingRowIsSameNotFound(t *testing.T) {
	m := &mockRepo{
		ownerOfFn: func(ctx context.Context, id int64) (*int64, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := New(m)

	name := "x"
	err := svc.Update(context.Background(), 2, 404, model.UpdateItemReq{Name: &name})
	require.Equal(t, ErrNotFound, Code(err))
}

func TestUpdate_SeededItemHasNoOwner(t *testing.T) {
	// pre-seeded items carry a NULL owner; nobody may mutate them
	m := &mockRepo{
		ownerOfFn: func(ctx context.Context, id int64) (*int64, error) {
			return nil, nil
		},
	}
	svc := New(m)

	price := 20.0
	err := svc.Update(context.Background(), 1, 5, model.UpdateItemReq{PricePerDay: &price})
	require.Equal(t, ErrNotFound, Code(err))
}

func TestUpdate_RejectsNonPositivePrice(t *testing.T) {
	svc := New(&mockRepo{})

	price := 0.0
	err := svc.Update(context.Background(), 1, 5, model.UpdateItemReq{PricePerDay: &price})
	require.Equal(t, ErrBadInput, Code(err))
}

func TestDelete_OwnerSucceeds(t *testing.T) {
	owner := int64(7)
	deleted := false
	m := &mockRepo{
		ownerOfFn: func(ctx context.Context, id int64) (*int64, error) {
			return &owner, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	svc := New(m)

	require.NoError(t, svc.Delete(context.Background(), 7, 9))
	require.True(t, deleted)
}
