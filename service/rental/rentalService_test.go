package rentalsvc

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"rentkaro/model"
	rentalrepo "rentkaro/repository/rental"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	listFn   func(ctx context.Context, userID int64) ([]model.Rental, error)
	byIDFn   func(ctx context.Context, userID, id int64) (*model.Rental, error)
	insertFn func(ctx context.Context, userID int64, itemID string, typ model.RentalType, paymentID *string) (int64, error)
	updateFn func(ctx context.Context, userID, id int64, status model.RentalStatus) error
}

var _ rentalrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) ListByUser(ctx context.Context, userID int64) ([]model.Rental, error) {
	return m.listFn(ctx, userID)
}

func (m *mockRepo) ByID(ctx context.Context, userID, id int64) (*model.Rental, error) {
	return m.byIDFn(ctx, userID, id)
}

func (m *mockRepo) Insert(ctx context.Context, userID int64, itemID string, typ model.RentalType, paymentID *string) (int64, error) {
	return m.insertFn(ctx, userID, itemID, typ, paymentID)
}

func (m *mockRepo) InsertTx(ctx context.Context, tx *sql.Tx, userID int64, itemID string, typ model.RentalType, paymentID *string) (int64, error) {
	return m.insertFn(ctx, userID, itemID, typ, paymentID)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, userID, id int64, status model.RentalStatus) error {
	return m.updateFn(ctx, userID, id, status)
}

func TestCreate_TypeCoercion(t *testing.T) {
	ctx := context.Background()
	var gotType model.RentalType
	m := &mockRepo{
		insertFn: func(ctx context.Context, userID int64, itemID string, typ model.RentalType, paymentID *string) (int64, error) {
			gotType = typ
			return 1, nil
		},
	}
	svc := New(m)

	for _, tc := range []struct {
		in   string
		want model.RentalType
	}{
		{"Rented", model.RentalRented},
		{"Lent", model.RentalLent},
		{"", model.RentalRented},
		{"lent", model.RentalRented},
		{"Stolen", model.RentalRented},
	} {
		_, err := svc.Create(ctx, 1, model.CreateRentalReq{ItemID: "drill-1", Type: tc.in})
		require.NoError(t, err)
		require.Equal(t, tc.want, gotType, "type %q", tc.in)
	}
}

func TestCreate_RequiresItemID(t *testing.T) {
	svc := New(&mockRepo{})

	_, err := svc.Create(context.Background(), 1, model.CreateRentalReq{ItemID: "  "})
	require.Equal(t, ErrBadItem, Code(err))

	_, err = svc.Create(context.Background(), 1, model.CreateRentalReq{ItemID: strings.Repeat("x", 101)})
	require.Equal(t, ErrBadItem, Code(err))
}

func TestCreate_PaymentRefPassedThrough(t *testing.T) {
	var gotPayment *string
	m := &mockRepo{
		insertFn: func(ctx context.Context, userID int64, itemID string, typ model.RentalType, paymentID *string) (int64, error) {
			gotPayment = paymentID
			return 5, nil
		},
	}
	svc := New(m)

	_, err := svc.Create(context.Background(), 1, model.CreateRentalReq{ItemID: "1", PaymentID: "pay_abc"})
	require.NoError(t, err)
	require.NotNil(t, gotPayment)
	require.Equal(t, "pay_abc", *gotPayment)

	_, err = svc.Create(context.Background(), 1, model.CreateRentalReq{ItemID: "1"})
	require.NoError(t, err)
	require.Nil(t, gotPayment)
}

func TestUpdateStatus_Validation(t *testing.T) {
	svc := New(&mockRepo{})

	err := svc.UpdateStatus(context.Background(), 1, 1, "Done")
	require.Equal(t, ErrBadStatus, Code(err))

	err = svc.UpdateStatus(context.Background(), 1, 1, "ongoing")
	require.Equal(t, ErrBadStatus, Code(err))
}

func TestUpdateStatus_BothDirectionsAllowed(t *testing.T) {
	// Completed is not terminal at the data layer: both enum values are
	// accepted, in either order.
	var got []model.RentalStatus
	m := &mockRepo{
		updateFn: func(ctx context.Context, userID, id int64, status model.RentalStatus) error {
			got = append(got, status)
			return nil
		},
	}
	svc := New(m)

	require.NoError(t, svc.UpdateStatus(context.Background(), 1, 9, "Completed"))
	require.NoError(t, svc.UpdateStatus(context.Background(), 1, 9, "Ongoing"))
	require.Equal(t, []model.RentalStatus{model.RentalCompleted, model.RentalOngoing}, got)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	m := &mockRepo{
		updateFn: func(ctx context.Context, userID, id int64, status model.RentalStatus) error {
			return sql.ErrNoRows
		},
	}
	svc := New(m)

	err := svc.UpdateStatus(context.Background(), 1, 404, "Completed")
	require.Equal(t, ErrNotFound, Code(err))
}

func TestGet_OwnershipMismatchIsNotFound(t *testing.T) {
	m := &mockRepo{
		byIDFn: func(ctx context.Context, userID, id int64) (*model.Rental, error) {
			// The repo filters on id+owner, so another user's rental
			// surfaces as no rows.
			return nil, sql.ErrNoRows
		},
	}
	svc := New(m)

	_, err := svc.Get(context.Background(), 2, 1)
	require.Equal(t, ErrNotFound, Code(err))
}
