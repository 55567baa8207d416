// Command remind evaluates which reminders are due today and reports each
// one as a structured log line. It is intended to be invoked daily by an
// external cron job; delivery (email, chat) is handled downstream by
// whatever consumes the logs.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pactwatch/pactwatch-backend/internal/adapter/postgres"
	contractrepo "github.com/pactwatch/pactwatch-backend/internal/adapter/postgres/contract"
	eventrepo "github.com/pactwatch/pactwatch-backend/internal/adapter/postgres/event"
	reminderrepo "github.com/pactwatch/pactwatch-backend/internal/adapter/postgres/reminder"
	"github.com/pactwatch/pactwatch-backend/internal/app"
	"github.com/pactwatch/pactwatch-backend/internal/config"
	remindersvc "github.com/pactwatch/pactwatch-backend/internal/service/reminders"
)

func main() {
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

	svc := remindersvc.NewService(logger,
		reminderrepo.New(pool),
		eventrepo.New(pool),
		contractrepo.New(pool),
	)

	today := time.Now()

	rows, err := svc.DueOn(ctx, today)
	if err != nil {
		logger.Error("evaluate due reminders", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, row := range rows {
		logger.Info("reminder due",
			slog.String("event_id", row.Event.ID.String()),
			slog.String("event_type", row.Event.Type.String()),
			slog.String("event_date", row.Event.Date.Format("2006-01-02")),
			slog.String("contract_id", row.Contract.ID.String()),
			slog.String("contract_title", row.Contract.Title),
			slog.String("recipients", strings.Join(row.Reminder.Recipients, ",")),
		)
	}

	logger.Info("reminder evaluation completed",
		slog.String("date", today.Format("2006-01-02")),
		slog.Int("due", len(rows)),
	)
}
