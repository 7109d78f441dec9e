package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studyplan-api/internal/config"
	"github.com/phrazzld/studyplan-api/internal/domain/planner"
	"github.com/phrazzld/studyplan-api/internal/platform/postgres"
	"github.com/phrazzld/studyplan-api/internal/service"
	"github.com/phrazzld/studyplan-api/internal/service/auth"
	"github.com/phrazzld/studyplan-api/internal/store"
)

// appStores groups the store implementations the services are built from.
type appStores struct {
	Users     store.UserStore
	Tasks     store.TaskStore
	FocusLogs store.FocusLogStore
	Subjects  store.SubjectStore
	Schedules store.ScheduleStore
}

// application holds the wired dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userService     service.UserService
	taskService     service.TaskService
	subjectService  service.SubjectService
	focusService    service.FocusService
	scheduleService service.ScheduleService
	jwtService      auth.JWTService
}

// newApplication builds the Postgres-backed stores over db and wires the
// services on top of them.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	stores := appStores{
		Users:     postgres.NewPostgresUserStore(db, cfg.Auth.BCryptCost, logger),
		Tasks:     postgres.NewPostgresTaskStore(db, logger),
		FocusLogs: postgres.NewPostgresFocusLogStore(db, logger),
		Subjects:  postgres.NewPostgresSubjectStore(db, logger),
		Schedules: postgres.NewPostgresScheduleStore(db, logger),
	}

	app, err := buildApplication(cfg, logger, stores, store.NewTxRunner(db))
	if err != nil {
		return nil, err
	}
	app.db = db
	return app, nil
}

// buildApplication wires services from the given stores. It does not touch
// the database, so tests can pass store mocks.
func buildApplication(
	cfg *config.Config,
	logger *slog.Logger,
	stores appStores,
	runTx store.TxRunner,
) (*application, error) {
	params := planner.NewParams(planner.ParamsConfig{
		HorizonDays:              cfg.Planner.HorizonDays,
		MaxSessionHours:          cfg.Planner.MaxSessionHours,
		DefaultStudyHoursPerDay:  cfg.Planner.DefaultStudyHoursPerDay,
		DefaultDailyAvailability: cfg.Planner.DefaultDailyAvailability,
		MinSessionHours:          cfg.Planner.MinSessionHours,
	})
	engine, err := planner.NewServiceWithParams(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create planner: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	scheduleService, err := service.NewScheduleService(service.ScheduleStores{
		Users:     stores.Users,
		Tasks:     stores.Tasks,
		FocusLogs: stores.FocusLogs,
		Subjects:  stores.Subjects,
		Schedules: stores.Schedules,
	}, runTx, engine, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule service: %w", err)
	}

	return &application{
		config:          cfg,
		logger:          logger,
		userService:     service.NewUserService(stores.Users, runTx, auth.NewBcryptVerifier(), logger),
		taskService:     service.NewTaskService(stores.Tasks, runTx, logger),
		subjectService:  service.NewSubjectService(stores.Subjects, runTx, logger),
		focusService:    service.NewFocusService(stores.FocusLogs, engine, logger),
		scheduleService: scheduleService,
		jwtService:      jwtService,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()
	return app.serve(ctx, app.setupRouter())
}

func (app *application) cleanup() {
	if app.db != nil {
		app.logger.Info("Closing database connection")
		closeDatabase(app.db, app.logger)
	}
}
