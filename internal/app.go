// internal/app.go
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	router "invoice-dao/internal/api"
	"invoice-dao/internal/api/handler"
	"invoice-dao/internal/config"
	"invoice-dao/internal/repository"
	"invoice-dao/internal/repository/postgres"
	"invoice-dao/internal/service"
	"invoice-dao/internal/util"
	"invoice-dao/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *zerolog.Logger
	DB     *sqlx.DB

	// Repositories
	CustomerRepository repository.CustomerRepository
	ProductRepository  repository.ProductRepository
	InvoiceRepository  repository.InvoiceRepository

	// Services
	InvoiceService  service.InvoiceService
	CustomerService service.CustomerService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{Logger: util.GetLogger()}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(cfg.Env, cfg.LogLevel)
	app.Logger = util.GetLogger()
	app.Logger.Info().Str("env", cfg.Env).Msg("application configuration loaded")

	isolation, err := db.ParseIsolation(cfg.DB.Isolation)
	if err != nil {
		return fmt.Errorf("invalid transaction isolation: %w", err)
	}

	// 3. Connect to Database
	database, err := db.NewPostgresDB(ctx, app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info().
		Str("driver", cfg.DB.Driver).
		Str("host", cfg.DB.Host).
		Str("database", cfg.DB.DBName).
		Msg("database connection established")

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(ctx, app.DB.DB, "up", *app.Logger); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// 4. Initialize Repositories
	app.CustomerRepository = postgres.NewCustomerRepository()
	app.ProductRepository = postgres.NewProductRepository()
	app.InvoiceRepository = postgres.NewInvoiceRepository()

	// 5. Initialize Services
	app.InvoiceService = service.NewInvoiceService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.ProductRepository,
		app.InvoiceRepository,
		db.NewBeginTx(isolation),
		db.CommitTx,
		db.RollbackTx,
	)
	app.CustomerService = service.NewCustomerService(app.DB, app.CustomerRepository, app.InvoiceRepository)
	app.Logger.Debug().Str("isolation", isolation.String()).Msg("services initialized")

	// 6. Initialize HTTP Handlers and Router
	invoiceHandler := handler.NewInvoiceHandler(app.InvoiceService, app.CustomerService, app.Logger)
	customerHandler := handler.NewCustomerHandler(app.CustomerService, app.Logger)
	app.HTTPHandler = router.NewRouter(invoiceHandler, customerHandler, app.Logger)

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info().Msg("shutting down application")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error().Err(err).Msg("failed to close database connection")
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info().Msg("database connection closed")
	}
	return nil
}
