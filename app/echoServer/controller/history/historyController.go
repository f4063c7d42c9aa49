package history

import (
	"log/slog"
	"net/http"

	"rentkaro/model"
	historysvc "rentkaro/service/history"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc historysvc.Service
	Log *slog.Logger
}

// GET /history
func (h *Controller) List(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	rows, err := h.Svc.List(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("history list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
	}
	if rows == nil {
		rows = []model.HistoryEntry{}
	}
	return c.JSON(http.StatusOK, echo.Map{"history": rows})
}

// POST /history
func (h *Controller) Add(c echo.Context) error {
	var req model.AddHistoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid body"})
	}
	uid, _ := c.Get("user_id").(int64)

	id, err := h.Svc.Add(c.Request().Context(), uid, req)
	if err != nil {
		h.Log.Error("history add", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}
