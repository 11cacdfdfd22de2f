package main

import (
	"context"
	"log"
	"os"

	"github.com/adewale/termshop/internal/cli"
	"github.com/adewale/termshop/internal/config"
	"github.com/adewale/termshop/internal/logging"
	"github.com/adewale/termshop/internal/service"
	"github.com/adewale/termshop/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)

	users := store.NewUsers(cfg.AccountsPath())
	if err := users.Load(); err != nil {
		logger.Warn("could not load users", "error", err)
	}

	inventory := store.NewInventory(cfg.DataDir, cfg.DefaultStock)
	if err := inventory.Load(); err != nil {
		logger.Warn("could not load products", "error", err)
	}

	orders, err := store.OpenOrders(cfg.OrdersDB)
	if err != nil {
		log.Fatalf("orders db: %v", err)
	}
	defer orders.Close()

	app := cli.New(
		os.Stdin,
		os.Stdout,
		&service.AuthService{Users: users},
		&service.AccountService{Users: users},
		&service.CheckoutService{Users: users, Orders: orders},
		inventory,
	)

	ctx := logging.IntoContext(context.Background(), logger)
	app.Run(ctx)
}
