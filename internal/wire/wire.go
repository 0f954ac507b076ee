// Package wire provides dependency injection for the pointage application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	"github.com/example/pointage/internal/adapters/memory"
	"github.com/example/pointage/internal/adapters/sqlite"
	"github.com/example/pointage/internal/app"
	"github.com/example/pointage/internal/config"
	"github.com/example/pointage/internal/core/dates"
	"github.com/example/pointage/internal/db"
	"github.com/example/pointage/internal/ports/primary"
)

var (
	timesheetService    primary.TimesheetService
	workflowService     primary.WorkflowService
	notificationService *app.NotificationServiceImpl
	loadedConfig        *config.Config
	once                sync.Once
)

// TimesheetService returns the singleton TimesheetService instance.
func TimesheetService() primary.TimesheetService {
	once.Do(initServices)
	return timesheetService
}

// WorkflowService returns the singleton WorkflowService instance.
func WorkflowService() primary.WorkflowService {
	once.Do(initServices)
	return workflowService
}

// NotificationService returns the singleton notification dispatcher.
func NotificationService() *app.NotificationServiceImpl {
	once.Do(initServices)
	return notificationService
}

// LoadedConfig returns the configuration the services were built from.
func LoadedConfig() *config.Config {
	once.Do(initServices)
	return loadedConfig
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	loadedConfig = cfg

	settings := app.DefaultSettings()
	if f, ok := dates.ParseFormat(cfg.DateFormat); ok {
		settings.DateFormat = f
	}
	if cfg.CSVSeparator != "" {
		settings.CSVSeparator = cfg.CSVSeparator
	}
	if cfg.Currency != "" {
		settings.Currency = cfg.Currency
	}

	notificationService = app.NewNotificationService(os.Stdout)

	if cfg.Storage == "memory" {
		employees := memory.NewEmployeeRepository()
		projects := memory.NewProjectRepository()
		entries := memory.NewEntryRepository()
		audit := memory.NewAuditLog()
		timesheetService = app.NewTimesheetService(employees, projects, entries, audit, settings, os.Stdout)
		workflowService = app.NewWorkflowService(entries, employees, projects, notificationService)
		return
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	employees := sqlite.NewEmployeeRepository(database)
	projects := sqlite.NewProjectRepository(database)
	entries := sqlite.NewEntryRepository(database)
	audit := sqlite.NewAuditLog(database)

	timesheetService = app.NewTimesheetService(employees, projects, entries, audit, settings, os.Stdout)
	workflowService = app.NewWorkflowService(entries, employees, projects, notificationService)
}
