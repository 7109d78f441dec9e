package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/studyplan-api/internal/api"
	apiMiddleware "github.com/phrazzld/studyplan-api/internal/api/middleware"
)

// setupRouter builds the chi router with every API route. Everything under
// /api except registration, login, refresh and logout requires a bearer
// access token.
func (app *application) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.logger)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	subjectHandler := api.NewSubjectHandler(app.subjectService, app.logger)
	focusHandler := api.NewFocusHandler(app.focusService, app.logger)
	scheduleHandler := api.NewScheduleHandler(app.scheduleService, app.logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)
		r.Post("/auth/logout", authHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)
			r.Delete("/auth/me", authHandler.DeleteAccount)
			r.Patch("/auth/preferences", authHandler.UpdatePreferences)

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", taskHandler.CreateTask)
				r.Get("/", taskHandler.ListTasks)
				r.Get("/{id}", taskHandler.GetTask)
				r.Put("/{id}", taskHandler.UpdateTask)
				r.Delete("/{id}", taskHandler.DeleteTask)
			})

			r.Route("/subjects", func(r chi.Router) {
				r.Post("/", subjectHandler.CreateSubject)
				r.Get("/", subjectHandler.ListSubjects)
				r.Get("/{id}", subjectHandler.GetSubject)
				r.Put("/{id}", subjectHandler.UpdateSubject)
				r.Delete("/{id}", subjectHandler.DeleteSubject)
			})

			r.Route("/focus", func(r chi.Router) {
				r.Post("/", focusHandler.LogFocus)
				r.Get("/", focusHandler.ListFocusLogs)
				r.Get("/stats", focusHandler.FocusStats)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Post("/generate", scheduleHandler.GenerateSchedule)
				r.Get("/", scheduleHandler.ListSchedules)
				r.Get("/{id}", scheduleHandler.GetSchedule)
				r.Delete("/{id}", scheduleHandler.DeleteSchedule)
				r.Patch("/sessions/{id}/status", scheduleHandler.UpdateSessionStatus)
			})
		})
	})

	return r
}
