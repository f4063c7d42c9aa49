package payment

import (
	"errors"
	"log/slog"
	"net/http"

	paymentsvc "rentkaro/service/payment"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc paymentsvc.Service
	Log *slog.Logger
}

type payReq struct {
	Amount float64 `json:"amount"`
}

// POST /pay
func (h *Controller) Pay(c echo.Context) error {
	var req payReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid amount"})
	}

	paymentID, err := h.Svc.Pay(c.Request().Context(), req.Amount)
	if err != nil {
		if errors.Is(err, paymentsvc.ErrBadAmount) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid amount"})
		}
		h.Log.Error("pay", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Payment failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "paymentId": paymentID})
}
