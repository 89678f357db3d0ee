package app

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/zeroonedevs/SheRisesv1/configs"
	"github.com/zeroonedevs/SheRisesv1/internal/handlers"
	"github.com/zeroonedevs/SheRisesv1/internal/repositories"
	"github.com/zeroonedevs/SheRisesv1/internal/servers/database"
	"github.com/zeroonedevs/SheRisesv1/internal/servers/http"
	"github.com/zeroonedevs/SheRisesv1/internal/services"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)

	authRepo := repositories.NewAuthenticationRepository(db)
	authService := services.NewAuthenticationService(authRepo, app.configs)

	messagingRepo := repositories.NewMessagingRepository(db)
	unreadCache := services.NewUnreadCacheService(app.redis, app.ctx, app.configs)
	messagingService := services.NewMessagingService(messagingRepo, authRepo, unreadCache)

	minioService := services.NewMinioService(app.configs)
	fileManagerService := services.NewFileManagerService(minioService)

	restHandler := handlers.NewRestHandler(
		authService,
		messagingService,
		fileManagerService,
	)

	http.NewHttpServer(app.ctx, restHandler, app.configs).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.address"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
