package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"rentkaro/model"
	authsvc "rentkaro/service/auth"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Signup registers a new user
// @Summary      Sign up
// @Description  Create a user with an email and/or phone plus password, returns a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.SignupReq  true  "Signup payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "email/phone already registered"
// @Router       /signup [post]
func (ct *Controller) Signup(c echo.Context) error {
	var req model.SignupReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid body"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email or phone and password required"})
	}

	u, token, err := ct.Svc.Signup(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, authsvc.ErrNoIdentifier),
			errors.Is(err, authsvc.ErrBadEmail),
			errors.Is(err, authsvc.ErrBadPhone),
			errors.Is(err, authsvc.ErrShortPassword):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, authsvc.ErrTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "Email or phone already registered"})
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("signup failed", "err", err, "req_id", rid, "path", c.Path())
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create user"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"token": token, "user": u})
}

// Login authenticates a user
// @Summary      Log in
// @Description  Login with email or phone plus password, returns a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid body"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email or phone and password required"})
	}

	u, token, err := ct.Svc.Login(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, authsvc.ErrNoIdentifier),
			errors.Is(err, authsvc.ErrBadEmail),
			errors.Is(err, authsvc.ErrBadPhone):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, authsvc.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		case errors.Is(err, authsvc.ErrInvalidCreds):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("login failed", "err", err, "req_id", rid, "path", c.Path())
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": u})
}
