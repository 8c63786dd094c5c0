// Command dispatch-scheduled moves due scheduled messages into the message
// history. Run it from cron at whatever cadence the business needs; claims
// are per-row, so overlapping runs are safe.
//
// Usage:
//
//	dispatch-scheduled
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ventasuite/crm-backend/internal/adapter/postgres"
	customerrepo "github.com/ventasuite/crm-backend/internal/adapter/postgres/customer"
	messagerepo "github.com/ventasuite/crm-backend/internal/adapter/postgres/message"
	scheduledrepo "github.com/ventasuite/crm-backend/internal/adapter/postgres/scheduled"
	"github.com/ventasuite/crm-backend/internal/app"
	"github.com/ventasuite/crm-backend/internal/config"
	messagesvc "github.com/ventasuite/crm-backend/internal/service/message"
)

func main() {
	cfg, err := config.LoadWorker()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	svc := messagesvc.NewService(
		logger,
		messagerepo.New(pool),
		scheduledrepo.New(pool),
		customerrepo.New(pool),
		cfg.CRM,
	)

	count, err := svc.DispatchDue(ctx)
	if err != nil {
		log.Fatalf("dispatch scheduled messages: %v (dispatched %d before failing)", err, count)
	}

	fmt.Printf("Dispatched %d scheduled messages.\n", count)
}
