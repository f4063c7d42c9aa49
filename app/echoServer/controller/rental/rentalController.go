package rental

import (
	"log/slog"
	"net/http"
	"strconv"

	"rentkaro/model"
	rentalsvc "rentkaro/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rentalsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /rentals
func (h *Controller) List(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	rows, err := h.Svc.List(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("rental list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
	}
	if rows == nil {
		rows = []model.Rental{}
	}
	return c.JSON(http.StatusOK, echo.Map{"rentals": rows})
}

// GET /rentals/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Rental not found"})
	}
	uid, _ := c.Get("user_id").(int64)

	rt, err := h.Svc.Get(c.Request().Context(), uid, id)
	if err != nil {
		switch rentalsvc.Code(err) {
		case rentalsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Rental not found"})
		default:
			h.Log.Error("rental get", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"rental": rt})
}

// POST /rentals
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid body"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid itemId"})
	}
	uid, _ := c.Get("user_id").(int64)

	id, err := h.Svc.Create(c.Request().Context(), uid, req)
	if err != nil {
		switch rentalsvc.Code(err) {
		case rentalsvc.ErrBadItem:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid itemId"})
		default:
			h.Log.Error("rental create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// PATCH /rentals
func (h *Controller) UpdateStatus(c echo.Context) error {
	var req model.UpdateRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}
	uid, _ := c.Get("user_id").(int64)

	if err := h.Svc.UpdateStatus(c.Request().Context(), uid, req.ID, req.Status); err != nil {
		switch rentalsvc.Code(err) {
		case rentalsvc.ErrBadStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
		case rentalsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Rental not found"})
		default:
			h.Log.Error("rental update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
