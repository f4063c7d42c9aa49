package echoServer

import (
	"net/http"

	authctrl "rentkaro/app/echoServer/controller/auth"
	checkoutctrl "rentkaro/app/echoServer/controller/checkout"
	historyctrl "rentkaro/app/echoServer/controller/history"
	itemctrl "rentkaro/app/echoServer/controller/item"
	paymentctrl "rentkaro/app/echoServer/controller/payment"
	rentalctrl "rentkaro/app/echoServer/controller/rental"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth     *authctrl.Controller
	Item     *itemctrl.Controller
	History  *historyctrl.Controller
	Rental   *rentalctrl.Controller
	Payment  *paymentctrl.Controller
	Checkout *checkoutctrl.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	e.POST("/signup", c.Auth.Signup)
	e.POST("/login", c.Auth.Login)
	e.GET("/items", c.Item.List)
	e.GET("/items/:id", c.Item.Detail)

	// Auth
	auth := e.Group("")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		SigningMethod: "HS256",
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization:Bearer ",
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
		},
	}))
	auth.Use(JWTAuth(c.JWTSecret))

	auth.GET("/history", c.History.List)
	auth.POST("/history", c.History.Add)

	auth.POST("/items", c.Item.Create)
	auth.PATCH("/items/:id", c.Item.Update)
	auth.DELETE("/items/:id", c.Item.Delete)

	auth.GET("/rentals", c.Rental.List)
	auth.GET("/rentals/:id", c.Rental.Get)
	auth.POST("/rentals", c.Rental.Create)
	auth.PATCH("/rentals", c.Rental.UpdateStatus)

	auth.POST("/pay", c.Payment.Pay)
	auth.POST("/checkout", c.Checkout.Checkout)
}
