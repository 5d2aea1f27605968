package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/jmoiron/sqlx"

	"github.com/ankaahq/ankaa-access/internal/auth"
	"github.com/ankaahq/ankaa-access/internal/authz"
	"github.com/ankaahq/ankaa-access/internal/sector"
	"github.com/ankaahq/ankaa-access/internal/serviceorder"
	"github.com/ankaahq/ankaa-access/internal/task"
	"github.com/ankaahq/ankaa-access/internal/transport/middleware"
	"github.com/ankaahq/ankaa-access/internal/transport/swagger"
	"github.com/ankaahq/ankaa-access/internal/user"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *auth.Handler
	User         *user.Handler
	Sector       *sector.Handler
	ServiceOrder *serviceorder.Handler
	Task         *task.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, sqlxDB *sqlx.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)
	guard := middleware.NewEntityGuard(logger)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve the OpenAPI spec at root, outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if h.Auth != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", h.Auth.Login)
				sr.Post("/refresh", h.Auth.RefreshToken)
				sr.Post("/logout", h.Auth.Logout)
			})
		}

		if h.Auth == nil {
			return
		}

		// Everything below requires a session user
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			if h.User != nil {
				pr.Get("/users/me", h.User.GetCurrentUser)
				pr.Get("/users/me/access", h.User.GetAccessSummary)

				pr.Group(func(mr chi.Router) {
					mr.Use(guard.RequireUserManagement())
					mr.Get("/users", h.User.ListUsers)
				})
			}

			if h.Sector != nil {
				pr.Route("/sectors", func(sr chi.Router) {
					sr.Get("/", h.Sector.GetSectors)
					sr.Get("/{id}", h.Sector.GetSector)

					sr.Group(func(mr chi.Router) {
						mr.Use(guard.RequireUserManagement())
						mr.Post("/", h.Sector.CreateSector)
						mr.Put("/{id}", h.Sector.UpdateSector)
						mr.Delete("/{id}", h.Sector.DeleteSector)
					})
				})
			}

			if h.ServiceOrder != nil {
				pr.Route("/service-orders", func(sr chi.Router) {
					sr.Get("/", h.ServiceOrder.ListServiceOrders)
					sr.Post("/", h.ServiceOrder.CreateServiceOrder)
					sr.Get("/{id}", h.ServiceOrder.GetServiceOrder)
					sr.Get("/{id}/allowed-statuses", h.ServiceOrder.GetAllowedStatuses)

					sr.Group(func(mr chi.Router) {
						mr.Use(auth.RequireLeaderOrderScope(sqlxDB))
						mr.Patch("/{id}/status", h.ServiceOrder.UpdateServiceOrderStatus)
					})

					sr.Group(func(mr chi.Router) {
						mr.Use(guard.RequireAdmin())
						mr.Patch("/{id}/cancel", h.ServiceOrder.CancelServiceOrder)
						mr.Patch("/{id}/approve", h.ServiceOrder.ApproveArtworkOrder)
					})
				})
			}

			if h.Task != nil {
				pr.Route("/tasks", func(tr chi.Router) {
					tr.Get("/", h.Task.ListTasks)
					tr.Get("/{id}", h.Task.GetTask)

					tr.Group(func(mr chi.Router) {
						mr.Use(guard.RequireEntityEdit(authz.EntityTask))
						mr.Post("/", h.Task.CreateTask)
						mr.Delete("/{id}", h.Task.DeleteTask)
					})

					tr.Group(func(mr chi.Router) {
						mr.Use(auth.RequireCanManageTask(sqlxDB))
						mr.Post("/{id}/start", h.Task.StartTask)
						mr.Post("/{id}/finish", h.Task.FinishTask)
					})

					tr.Group(func(mr chi.Router) {
						mr.Use(auth.RequireCanRequestCut(sqlxDB))
						mr.Post("/{id}/cut", h.Task.RequestCut)
					})

					tr.Group(func(mr chi.Router) {
						mr.Use(auth.RequireCanEditLayout(sqlxDB))
						mr.Patch("/{id}/layout", h.Task.UpdateLayout)
					})
				})
			}
		})
	})
}
