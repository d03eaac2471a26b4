// Command forum boots the topic core and keeps it running until SIGINT or
// SIGTERM. The HTTP surface is provided by the embedding deployment; this
// binary exists to validate configuration and database connectivity in
// environments where that surface is attached separately.
//
// Exit codes: 0 = clean shutdown, 1 = startup error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/avolkov-dev/forum-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Bootstrap(ctx)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer a.Close()

	names, err := a.Categories.ListNames(ctx)
	if err != nil {
		a.Log.Error("list categories", slog.String("error", err.Error()))
		return
	}
	a.Log.Info("forum core ready", slog.Int("categories", len(names)))

	<-ctx.Done()
	a.Log.Info("shutting down")
}
