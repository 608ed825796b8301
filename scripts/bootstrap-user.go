// Command bootstrap-user provisions a user directly against the database
// and prints the issued API key. Useful for seeding environments where the
// HTTP registration endpoint is not reachable.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Chiggy-Playz/Todo-API/internal/metrics"
	"github.com/Chiggy-Playz/Todo-API/internal/migrations"
	"github.com/Chiggy-Playz/Todo-API/internal/repository"
	"github.com/Chiggy-Playz/Todo-API/internal/service"
)

type output struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	APIKey string `json:"api_key"`
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		name        = flag.String("name", "system", "User name")
		email       = flag.String("email", "system@todo.local", "User email")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := migrations.Up(ctx, *databaseURL); err != nil {
		fmt.Fprintln(os.Stderr, "apply migrations:", err)
		os.Exit(1)
	}

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	identity := service.NewIdentityService(repo, metrics.NewNoop())

	user, apiKey, err := identity.Register(ctx, service.RegisterInput{
		Name:  *name,
		Email: *email,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "register user:", err)
		os.Exit(1)
	}

	out := output{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		APIKey: apiKey,
	}

	switch strings.ToLower(*format) {
	case "plain":
		fmt.Println(out.APIKey)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	default:
		fmt.Fprintln(os.Stderr, "invalid format; use plain or json")
		os.Exit(1)
	}
}
