package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/pogojump/pogojump-api/config"
	"github.com/pogojump/pogojump-api/internal/container"
	"github.com/pogojump/pogojump-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("admin-email", "", "register this account; it is admin only if it is the first user")
	password := flag.String("admin-password", "", "password for the account (required with -admin-email)")
	name := flag.String("admin-name", "Admin", "display name for the account")
	flag.Parse()
	if err := checkAdminFlags(*email, *password); err != nil {
		log.Fatal(err)
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	// seeding never mails anyone
	cfg.RabbitMQURL = ""

	ctx := context.Background()
	c, err := container.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}
	defer c.Close()

	// The first load writes the sample catalog when the backend is empty
	if err := c.Store.Ping(ctx); err != nil {
		log.Fatalf("failed to load document: %v", err)
	}
	fmt.Printf("document ready on %s backend\n", cfg.DocumentBackend)

	if *email == "" {
		return
	}

	u, created, err := registerAdmin(ctx, c.Auth, c.Store, *email, *password, *name)
	if err != nil {
		log.Fatalf("admin not seeded: %v", err)
	}
	if created {
		fmt.Printf("created admin: id=%d email=%s name=%s\n", u.ID, u.Email, u.Name)
	} else {
		fmt.Printf("%s is already an admin\n", u.Email)
	}
}
