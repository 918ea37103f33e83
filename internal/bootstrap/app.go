package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-store/internal/resumes"
	"resume-store/internal/services/health"
	"resume-store/internal/shared/config"
	"resume-store/internal/shared/server"
	"resume-store/internal/shared/storage/db"
	"resume-store/internal/shared/telemetry"
)

// App holds the assembled application dependencies.
type App struct {
	Config  config.Config
	Router  *gin.Engine
	DB      *sql.DB
	Repo    resumes.Repo
	Service *resumes.Service
	Handler *resumes.Handler
	Health  *health.Service
}

// Build prepares dependencies and wires the router. With no DATABASE_URL in
// a dev-like environment the in-memory repository is used, which is also
// what the handler tests run against.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	svc := resumes.NewService(repo)
	handler := resumes.NewHandler(svc)
	healthSvc := health.NewService()

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Repo:    repo,
		Service: svc,
		Handler: handler,
		Health:  healthSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:  cfg,
		Resumes: handler,
		Health:  healthSvc,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.IsDevLike() {
			telemetry.Info("bootstrap: DATABASE_URL empty; using in-memory repository", nil)
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Error("bootstrap: database connect failed; using in-memory repository", map[string]any{"error": err.Error()})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}
