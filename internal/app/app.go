package app

import (
	"context"
	"net/http"

	"farm-ledger-go/internal/config"
	"farm-ledger-go/internal/db"
	admindomain "farm-ledger-go/internal/domain/admin"
	advisordomain "farm-ledger-go/internal/domain/advisor"
	analyticsdomain "farm-ledger-go/internal/domain/analytics"
	expensesdomain "farm-ledger-go/internal/domain/expenses"
	farmdomain "farm-ledger-go/internal/domain/farm"
	ledgerdomain "farm-ledger-go/internal/domain/ledger"
	userdomain "farm-ledger-go/internal/domain/user"
	analyticsrepo "farm-ledger-go/internal/repository/postgres/analytics"
	expensesrepo "farm-ledger-go/internal/repository/postgres/expenses"
	farmrepo "farm-ledger-go/internal/repository/postgres/farm"
	ledgerrepo "farm-ledger-go/internal/repository/postgres/ledger"
	userrepo "farm-ledger-go/internal/repository/postgres/user"
	"farm-ledger-go/internal/transport/httpserver"
	"farm-ledger-go/internal/transport/httpserver/handler"
	authmw "farm-ledger-go/internal/transport/httpserver/middleware"
	"farm-ledger-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	users := userdomain.NewService(userrepo.NewPostgres(dbConn))
	ledger := ledgerdomain.NewService(ledgerrepo.NewPostgres(dbConn))
	expenses := expensesdomain.NewService(expensesrepo.NewPostgres(dbConn))
	farm := farmdomain.NewService(farmrepo.NewPostgres(dbConn))
	analytics := analyticsdomain.NewService(analyticsrepo.NewPostgres(dbConn))
	admin := admindomain.NewService(userrepo.NewPostgres(dbConn), ledgerrepo.NewPostgres(dbConn))

	log.Info("app: seeding expense catalog")
	if err := expenses.SeedCatalog(context.Background()); err != nil {
		return nil, err
	}

	var advisorClient advisordomain.Client
	if cfg.Advisor.APIKey != "" {
		advisorClient = advisordomain.NewOpenAIClient(
			cfg.Advisor.APIKey,
			cfg.Advisor.Model,
			cfg.Advisor.BaseURL,
			cfg.Advisor.Timeout,
			cfg.Advisor.MaxTokens,
		)
	} else {
		log.Warn("app: advisor api key not set, assistant disabled")
	}
	advisor := advisordomain.NewService(advisorClient)

	auth := authmw.NewJWTAuth(cfg.Auth, users, log)

	log.Info("app: initializing router")
	handlers := handler.New(users, ledger, expenses, farm, analytics, admin, advisor, auth, log)
	router := httpserver.NewRouter(handlers, auth, cfg.AllowedOrigins)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
