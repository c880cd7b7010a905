package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"autoshop-backend/internal/analyze"
	"autoshop-backend/internal/documents"
	"autoshop-backend/internal/dvi"
	"autoshop-backend/internal/insights"
	"autoshop-backend/internal/repairorders"
	"autoshop-backend/internal/rewards"
	"autoshop-backend/internal/shared/config"
	"autoshop-backend/internal/shared/server"
	"autoshop-backend/internal/shared/storage/db"
	"autoshop-backend/internal/shared/storage/object"
	localstore "autoshop-backend/internal/shared/storage/object/local"
	s3store "autoshop-backend/internal/shared/storage/object/s3"
	"autoshop-backend/internal/shops"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	ShopsRepo        shops.Repo
	DocumentsRepo    documents.DocumentsRepo
	RepairOrdersRepo repairorders.Repo
	RewardsRepo      rewards.Repo
	DVIRepo          dvi.Repo

	AnalyzeService      *analyze.Service
	ShopsService        *shops.Service
	DocumentsService    *documents.Service
	RepairOrdersService *repairorders.Service
	RewardsService      *rewards.Service
	InsightsService     *insights.Service
	DVIService          *dvi.Service

	AnalyzeHandler      *analyze.Handler
	ShopsHandler        *shops.Handler
	DocumentsHandler    *documents.Handler
	RepairOrdersHandler *repairorders.Handler
	RewardsHandler      *rewards.Handler
	InsightsHandler     *insights.Handler
	DVIHandler          *dvi.Handler
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              app.Config,
		AnalyzeHandler:      app.AnalyzeHandler,
		ShopsHandler:        app.ShopsHandler,
		DocumentsHandler:    app.DocumentsHandler,
		RepairOrdersHandler: app.RepairOrdersHandler,
		RewardsHandler:      app.RewardsHandler,
		InsightsHandler:     app.InsightsHandler,
		DVIHandler:          app.DVIHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var (
		shopsRepo   shops.Repo
		docRepo     documents.DocumentsRepo
		roRepo      repairorders.Repo
		rewardsRepo rewards.Repo
		dviRepo     dvi.Repo
		insightsSrc insights.Store
	)

	if app.DB != nil {
		shopsRepo = &shops.PGRepo{DB: app.DB}
		docRepo = &documents.PGRepo{DB: app.DB}
		roRepo = &repairorders.PGRepo{DB: app.DB}
		rewardsRepo = &rewards.PGRepo{DB: app.DB}
		dviRepo = &dvi.PGRepo{DB: app.DB}
		insightsSrc = &insights.PGStore{DB: app.DB}
	} else {
		shopsRepo = shops.NewMemoryRepo()
		docRepo = documents.NewMemoryRepo()
		memRORepo := repairorders.NewMemoryRepo()
		roRepo = memRORepo
		rewardsRepo = rewards.NewMemoryRepo()
		dviRepo = dvi.NewMemoryRepo()
		insightsSrc = &insights.MemoryStore{Orders: memRORepo}
	}

	rewardsSvc := rewards.NewService(rewardsRepo)
	roSvc := repairorders.NewService(roRepo, rewardsAdapter{svc: rewardsSvc})

	app.ShopsRepo = shopsRepo
	app.DocumentsRepo = docRepo
	app.RepairOrdersRepo = roRepo
	app.RewardsRepo = rewardsRepo
	app.DVIRepo = dviRepo

	app.AnalyzeService = analyze.NewService(nil, nil, nil)
	app.ShopsService = shops.NewService(shopsRepo)
	app.DocumentsService = &documents.Service{Store: app.Store, Repo: docRepo}
	app.RepairOrdersService = roSvc
	app.RewardsService = rewardsSvc
	app.InsightsService = insights.NewService(insightsSrc)
	app.DVIService = dvi.NewService(dviRepo)

	app.AnalyzeHandler = analyze.NewHandler(app.AnalyzeService)
	app.ShopsHandler = shops.NewHandler(app.ShopsService)
	app.DocumentsHandler = documents.NewHandler(app.DocumentsService)
	app.RepairOrdersHandler = repairorders.NewHandler(app.RepairOrdersService)
	app.RewardsHandler = rewards.NewHandler(app.RewardsService)
	app.InsightsHandler = insights.NewHandler(app.InsightsService)
	app.DVIHandler = dvi.NewHandler(app.DVIService)
}

// rewardsAdapter narrows the rewards service to the gateway the repair-order
// flow depends on.
type rewardsAdapter struct {
	svc *rewards.Service
}

func (a rewardsAdapter) Earn(ctx context.Context, shopID, customerID string, points int64, reason, repairOrderID string) error {
	_, err := a.svc.Earn(ctx, shopID, customerID, points, reason, repairOrderID)
	return err
}
