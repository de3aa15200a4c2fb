package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hrportal/internal"
	"hrportal/internal/auth"
	authPostgres "hrportal/internal/auth/postgres"
	"hrportal/internal/compensation"
	compensationPostgres "hrportal/internal/compensation/postgres"
	"hrportal/internal/employee"
	employeePostgres "hrportal/internal/employee/postgres"
	"hrportal/internal/payroll"
	payrollPostgres "hrportal/internal/payroll/postgres"
	"hrportal/internal/transport/rest"
	"hrportal/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config              *internal.Config
	DB                  *gorm.DB
	SQLDB               *sql.DB
	Router              *chi.Mux
	AuthHandler         *auth.Handler
	Guard               *auth.Guard
	EmployeeHandler     *employee.Handler
	PayrollHandler      *payroll.Handler
	CompensationHandler *compensation.Handler
	Logger              *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.SQLDB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	rest.RegisterAllRoutes(
		deps.Router,
		deps.SQLDB,
		deps.Config.Server.AllowedOrigins,
		deps.AuthHandler,
		deps.Guard,
		deps.EmployeeHandler,
		deps.PayrollHandler,
		deps.CompensationHandler,
		deps.Logger,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authPostgres.NewRepository(db), tokenGen, config.Security.BCryptCost)

	employeeRepo := employeePostgres.NewEmployeeRepository(db)
	employeeService := employee.NewService(employeeRepo, authService, logger.L())

	payrollService := payroll.NewService(payrollPostgres.NewPayrollRepository(db), employeeRepo, logger.L())
	compensationService := compensation.NewService(compensationPostgres.NewCompensationRepository(db), employeeRepo, logger.L())

	return &Dependencies{
		Config:              config,
		Logger:              logger.L(),
		DB:                  db,
		SQLDB:               sqlDB,
		Router:              chi.NewRouter(),
		AuthHandler:         auth.NewHandler(authService),
		Guard:               auth.NewGuard(logger.L()),
		EmployeeHandler:     employee.NewHandler(employeeService),
		PayrollHandler:      payroll.NewHandler(payrollService),
		CompensationHandler: compensation.NewHandler(compensationService),
	}, nil
}

// initDB opens the connection through GORM. TranslateError is on so unique
// index violations surface as gorm.ErrDuplicatedKey for the repositories.
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
