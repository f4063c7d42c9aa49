package item

import (
	"log/slog"
	"net/http"
	"strconv"

	"rentkaro/model"
	itemsvc "rentkaro/service/item"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc itemsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /items
func (h *Controller) List(c echo.Context) error {
	items, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("item list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
	}
	if items == nil {
		items = []model.Item{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GET /items/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
	}
	it, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		switch itemsvc.Code(err) {
		case itemsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		default:
			h.Log.Error("item detail", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"item": it})
}

// POST /items
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid body"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name and positive pricePerDay required"})
	}
	uid, _ := c.Get("user_id").(int64)

	id, err := h.Svc.Create(c.Request().Context(), uid, req)
	if err != nil {
		switch itemsvc.Code(err) {
		case itemsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name and positive pricePerDay required"})
		default:
			h.Log.Error("item create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// PATCH /items/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
	}
	var req model.UpdateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid body"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid fields"})
	}
	uid, _ := c.Get("user_id").(int64)

	if err := h.Svc.Update(c.Request().Context(), uid, id, req); err != nil {
		switch itemsvc.Code(err) {
		case itemsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid fields"})
		case itemsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		default:
			h.Log.Error("item update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// DELETE /items/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
	}
	uid, _ := c.Get("user_id").(int64)

	if err := h.Svc.Delete(c.Request().Context(), uid, id); err != nil {
		switch itemsvc.Code(err) {
		case itemsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		default:
			h.Log.Error("item delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
