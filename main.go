// Package main Rentkaro API.
//
// @title           Rentkaro API
// @version         1.0
// @description     Peer-to-peer rental marketplace (auth, catalog, browse history, rentals, mock payment).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"rentkaro/app/echoServer"
	authctrl "rentkaro/app/echoServer/controller/auth"
	checkoutctrl "rentkaro/app/echoServer/controller/checkout"
	historyctrl "rentkaro/app/echoServer/controller/history"
	itemctrl "rentkaro/app/echoServer/controller/item"
	paymentctrl "rentkaro/app/echoServer/controller/payment"
	rentalctrl "rentkaro/app/echoServer/controller/rental"
	"rentkaro/app/echoServer/validation"
	"rentkaro/config"
	historyrepo "rentkaro/repository/history"
	itemrepo "rentkaro/repository/item"
	paymentrepo "rentkaro/repository/payment"
	rentalrepo "rentkaro/repository/rental"
	userrepo "rentkaro/repository/user"
	authsvc "rentkaro/service/auth"
	checkoutsvc "rentkaro/service/checkout"
	historysvc "rentkaro/service/history"
	itemsvc "rentkaro/service/item"
	paymentsvc "rentkaro/service/payment"
	rentalsvc "rentkaro/service/rental"
	"rentkaro/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(db)
	ir := itemrepo.New(db)
	hr := historyrepo.New(db)
	rr := rentalrepo.New(db)
	pp := paymentrepo.NewMock()

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	is := itemsvc.New(ir)
	hs := historysvc.New(hr)
	rs := rentalsvc.New(rr)
	ps := paymentsvc.New(pp)
	cs := checkoutsvc.New(db, rr, ps)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	itemC := &itemctrl.Controller{Svc: is, V: v, Log: log}
	historyC := &historyctrl.Controller{Svc: hs, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log}
	paymentC := &paymentctrl.Controller{Svc: ps, Log: log}
	checkoutC := &checkoutctrl.Controller{Svc: cs, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	started := time.Now()
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"ok":     true,
			"uptime": time.Since(started).Seconds(),
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:     authC,
		Item:     itemC,
		History:  historyC,
		Rental:   rentalC,
		Payment:  paymentC,
		Checkout: checkoutC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
