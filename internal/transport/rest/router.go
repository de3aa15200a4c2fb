package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"hrportal/internal/auth"
	"hrportal/internal/compensation"
	"hrportal/internal/employee"
	"hrportal/internal/payroll"
	"hrportal/internal/transport/middleware"
	"hrportal/internal/transport/swagger"
)

// RegisterAllRoutes wires every handler behind the auth middleware and the
// admin guard. Admin routes live under /admin; self-service routes read the
// caller identity from the session only.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	allowedOrigins string,
	authHandler *auth.Handler,
	guard *auth.Guard,
	employeeHandler *employee.Handler,
	payrollHandler *payroll.Handler,
	compensationHandler *compensation.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logging(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/refresh", authHandler.RefreshToken)
			sr.Post("/logout", authHandler.Logout)
		})

		// Everything below requires an authenticated session.
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			// Self-service routes. All queries filter by the session
			// identity; none accept an employee ID.
			pr.Get("/employees/me", employeeHandler.GetMe)
			pr.Put("/employees/me", employeeHandler.UpdateMe)
			pr.Get("/payrolls", payrollHandler.ListMyPayrolls)
			pr.Post("/payrolls", payrollHandler.AddMyPayroll)
			pr.Get("/compensations", compensationHandler.ListMyCompensations)

			// Admin routes.
			pr.Route("/admin", func(ar chi.Router) {
				ar.Use(guard.RequireAdmin())

				ar.Post("/employees", employeeHandler.Register)
				ar.Get("/personalinfos", employeeHandler.ListPersonalInfo)
				ar.Put("/personalinfos/{id}", employeeHandler.UpdatePersonalInfo)

				ar.Get("/payrolls", payrollHandler.ListPayrolls)
				ar.Post("/payrolls", payrollHandler.AddPayroll)
				ar.Put("/payrolls/{id}", payrollHandler.EditPayroll)
				ar.Delete("/payrolls/{id}", payrollHandler.DeletePayroll)

				ar.Get("/employees/{employeeID}/compensations", compensationHandler.ListCompensations)
				ar.Post("/compensations", compensationHandler.AddCompensation)
				ar.Put("/compensations/{id}", compensationHandler.EditCompensation)
				ar.Delete("/compensations/{id}", compensationHandler.DeleteCompensation)
			})
		})
	})
}
