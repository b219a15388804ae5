package service

import (
	"github.com/MKhiriev/go-habit-tracker/internal/adapter"
	"github.com/MKhiriev/go-habit-tracker/internal/config"
	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/internal/store"
)

type Services struct {
	AuthService          AuthService
	UserService          UserService
	HabitService         HabitService
	PleasantHabitService PleasantHabitService
	AppInfoService       AppInfoService

	// ReminderService is nil when no notifier is configured.
	ReminderService ReminderService
}

// NewServices builds the service layer over storages. notifier may be nil,
// in which case reminders are not available.
func NewServices(storages *store.Storages, notifier adapter.Notifier, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	habitService := NewHabitValidationService(storages.PleasantHabitRepository).
		Wrap(NewHabitService(storages.HabitRepository, logger))

	services := &Services{
		AuthService:          NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:          NewUserService(storages.UserRepository, logger),
		HabitService:         habitService,
		PleasantHabitService: NewPleasantHabitService(storages.PleasantHabitRepository, logger),
		AppInfoService:       appInfoService,
	}

	if notifier != nil {
		services.ReminderService, err = NewReminderService(storages.HabitRepository, notifier, cfg.Workers.Reminder, logger)
		if err != nil {
			return nil, err
		}
	}

	return services, nil
}
