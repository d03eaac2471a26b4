// Command seed populates the database with an initial set of categories
// and, optionally, demo users. It is idempotent: rerunning it updates
// nothing that already exists.
//
// Flags:
//
//	--categories  comma-separated category names (default: a starter set)
//	--users       comma-separated usernames to create (default: none)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/avolkov-dev/forum-backend/internal/adapter/postgres"
	categoryrepo "github.com/avolkov-dev/forum-backend/internal/adapter/postgres/category"
	userrepo "github.com/avolkov-dev/forum-backend/internal/adapter/postgres/user"
	"github.com/avolkov-dev/forum-backend/internal/app"
	"github.com/avolkov-dev/forum-backend/internal/config"
)

var defaultCategories = []string{"General", "Hardware", "Software", "DevOps", "Off-topic"}

func main() {
	categoriesFlag := flag.String("categories", "", "comma-separated category names")
	usersFlag := flag.String("users", "", "comma-separated usernames")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	categories := splitList(*categoriesFlag)
	if len(categories) == 0 {
		categories = defaultCategories
	}

	categoryRepo := categoryrepo.New(pool)
	for _, name := range categories {
		category, err := categoryRepo.Ensure(ctx, name)
		if err != nil {
			logger.Error("ensure category",
				slog.String("name", name),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		logger.Info("category ready",
			slog.Int64("id", category.ID),
			slog.String("name", category.Name),
		)
	}

	userRepo := userrepo.New(pool)
	for _, username := range splitList(*usersFlag) {
		user, err := userRepo.Ensure(ctx, username)
		if err != nil {
			logger.Error("ensure user",
				slog.String("username", username),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		logger.Info("user ready",
			slog.String("id", user.ID.String()),
			slog.String("username", user.Username),
		)
	}

	logger.Info("seed complete", slog.Int("categories", len(categories)))
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
