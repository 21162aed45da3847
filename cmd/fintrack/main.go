package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fintrack/internal/api"
	"fintrack/internal/config"
	"fintrack/internal/events"
	applog "fintrack/internal/log"
	"fintrack/internal/notify"
	"fintrack/internal/pages"
	"fintrack/internal/snapshot"
)

const usage = `Usage: fintrack <entity> <action> [flags]

Entities: expenses, investments, loans, sips
Actions:  list, summary, add, update, delete, export

Run 'fintrack <entity> <action> -h' for the flags of one action.`

// deps bundles everything a command needs; wired once in main.
type deps struct {
	cfg    *config.Config
	log    *applog.Logger
	bus    *notify.Bus
	client *api.Client

	expenses    *pages.ExpensesPage
	investments *pages.InvestmentsPage
	loans       *pages.LoansPage
	sips        *pages.SIPsPage

	expensesAPI    *api.ExpensesAPI
	investmentsAPI *api.InvestmentsAPI
	loansAPI       *api.LoansAPI
	sipsAPI        *api.SIPsAPI
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := applog.New(cfg.LogLevel, applog.ComponentApp)
	applog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := notify.NewBus()
	center := notify.NewCenter(bus)
	defer center.Close()

	// Console renderer for toasts; the center owns their lifetime, this just
	// makes them visible in a terminal.
	unsubscribe := bus.Subscribe(func(m notify.Message) {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", m.Kind, m.Text)
	})
	defer unsubscribe()

	session := api.NewSession()
	client := api.NewClient(api.Config{
		BaseURL:  cfg.BaseURL(),
		TokenURL: cfg.TokenURL(),
		Timeout:  cfg.HTTPTimeout,
	}, session, bus, logger)

	// Token bootstrap happens once before any page loads. Failure already
	// produced its toast; requests simply go out without a token.
	if err := client.BootstrapToken(ctx); err != nil {
		logger.Warn("Continuing without bearer token", applog.FieldError, err.Error())
	}

	var store *snapshot.Store
	if cfg.SnapshotDBPath != "" {
		var err error
		store, err = snapshot.Open(cfg.SnapshotDBPath)
		if err != nil {
			logger.Warn("Snapshot store unavailable", applog.FieldError, err.Error())
			store = nil
		} else {
			defer store.Close()
		}
	}

	var publisher *events.Publisher
	if cfg.AMQPURL != "" {
		var err error
		publisher, err = events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Event publisher unavailable", applog.FieldError, err.Error())
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	d := &deps{
		cfg:            cfg,
		log:            logger,
		bus:            bus,
		client:         client,
		expensesAPI:    api.NewExpensesAPI(client),
		investmentsAPI: api.NewInvestmentsAPI(client),
		loansAPI:       api.NewLoansAPI(client),
		sipsAPI:        api.NewSIPsAPI(client),
	}
	d.expenses = pages.NewExpensesPage(d.expensesAPI, store, publisher, logger)
	d.investments = pages.NewInvestmentsPage(d.investmentsAPI, store, publisher, logger)
	d.loans = pages.NewLoansPage(d.loansAPI, store, publisher, logger)
	d.sips = pages.NewSIPsPage(d.sipsAPI, store, publisher, logger)

	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "expenses":
		err = runExpenses(ctx, d, os.Args[2], os.Args[3:])
	case "investments":
		err = runInvestments(ctx, d, os.Args[2], os.Args[3:])
	case "loans":
		err = runLoans(ctx, d, os.Args[2], os.Args[3:])
	case "sips":
		err = runSIPs(ctx, d, os.Args[2], os.Args[3:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		// Toasts already reported the details; the exit code is for scripts.
		os.Exit(1)
	}
}
