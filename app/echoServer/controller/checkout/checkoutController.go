package checkout

import (
	"log/slog"
	"net/http"

	"rentkaro/model"
	checkoutsvc "rentkaro/service/checkout"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc checkoutsvc.Service
	Log *slog.Logger
}

// POST /checkout
func (h *Controller) Checkout(c echo.Context) error {
	var req model.CheckoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Each cart line needs an itemId, date and slot"})
	}
	uid, _ := c.Get("user_id").(int64)

	receipt, err := h.Svc.Checkout(c.Request().Context(), uid, req.Cart, req.Coupon)
	if err != nil {
		switch checkoutsvc.Code(err) {
		case checkoutsvc.ErrBadCart:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Each cart line needs an itemId, date and slot"})
		case checkoutsvc.ErrPayment:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Payment failed"})
		default:
			h.Log.Error("checkout", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
		}
	}
	return c.JSON(http.StatusOK, receipt)
}
