package checkout

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rentkaro/app/echoServer/validation"
	"rentkaro/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type mockCheckout struct {
	quoteFn    func(cart []model.CartLine, coupon string) model.Receipt
	checkoutFn func(ctx context.Context, userID int64, cart []model.CartLine, coupon string) (*model.Receipt, error)
}

func (m *mockCheckout) Quote(cart []model.CartLine, coupon string) model.Receipt {
	return m.quoteFn(cart, coupon)
}

func (m *mockCheckout) Checkout(ctx context.Context, userID int64, cart []model.CartLine, coupon string) (*model.Receipt, error) {
	return m.checkoutFn(ctx, userID, cart, coupon)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	return e
}

func post(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// Tag violations on cart lines are caught by the echo validator before
// the service runs.
func TestCheckout_BadLineRejected(t *testing.T) {
	e := newEcho()
	ct := &Controller{
		Svc: &mockCheckout{
			checkoutFn: func(ctx context.Context, userID int64, cart []model.CartLine, coupon string) (*model.Receipt, error) {
				t.Fatal("service must not be called for an invalid cart")
				return nil, nil
			},
		},
		Log: slog.Default(),
	}

	c, rec := post(e, `{"cart":[{"itemId":"1","pricePerDay":10,"date":"2026-09-01"}]}`)
	require.NoError(t, ct.Checkout(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "Each cart line needs an itemId, date and slot", out["error"])
}

func TestCheckout_ReturnsReceipt(t *testing.T) {
	e := newEcho()
	ct := &Controller{
		Svc: &mockCheckout{
			checkoutFn: func(ctx context.Context, userID int64, cart []model.CartLine, coupon string) (*model.Receipt, error) {
				require.Equal(t, int64(9), userID)
				return &model.Receipt{PaymentID: "pay_x", RentalIDs: []int64{1}, Subtotal: 10, Total: 10}, nil
			},
		},
		Log: slog.Default(),
	}

	c, rec := post(e, `{"cart":[{"itemId":"1","pricePerDay":10,"date":"2026-09-01","slot":"Morning"}]}`)
	c.Set("user_id", int64(9))
	require.NoError(t, ct.Checkout(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var out model.Receipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "pay_x", out.PaymentID)
	require.Equal(t, []int64{1}, out.RentalIDs)
}
