package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-habit-tracker/internal/adapter"
	"github.com/MKhiriev/go-habit-tracker/internal/config"
	"github.com/MKhiriev/go-habit-tracker/internal/handler"
	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/internal/server"
	"github.com/MKhiriev/go-habit-tracker/internal/service"
	"github.com/MKhiriev/go-habit-tracker/internal/store"
	"github.com/MKhiriev/go-habit-tracker/internal/utils"
	"github.com/MKhiriev/go-habit-tracker/internal/workers"
	"github.com/MKhiriev/go-habit-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("habit-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLoggerWithConfig("habit-server", cfg.Log)
	log.Debug().Str("http_address", cfg.Server.HTTPAddress).Str("grpc_address", cfg.Server.GRPCAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	notifier := newNotifier(cfg, log)

	services, err := service.NewServices(storages, notifier, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages.DB(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs := workers.NewWorkers()
	if services.ReminderService != nil {
		jobs.Add(workers.NewReminderWorker(services.ReminderService, utils.NewUUIDGenerator(), cfg.Workers.Reminder.Interval, log))
	}

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newNotifier returns nil when reminders are disabled or no bot token is set.
func newNotifier(cfg *config.StructuredConfig, log *logger.Logger) adapter.Notifier {
	if cfg.Workers.Reminder.Disabled {
		log.Info().Msg("reminder worker disabled")
		return nil
	}
	if cfg.Adapter.Telegram.BotToken == "" {
		log.Warn().Msg("telegram bot token is not set, reminders are off")
		return nil
	}

	notifier, err := adapter.NewTelegramNotifier(cfg.Adapter.Telegram, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating telegram notifier")
	}
	return notifier
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
