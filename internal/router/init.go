package router

import (
	app "github.com/healthplate/backend/internal/application"
	"github.com/healthplate/backend/internal/container"
	"github.com/healthplate/backend/internal/infrastructure/mongodb"
	handlers "github.com/healthplate/backend/internal/interface/http"
	"github.com/healthplate/backend/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// adds them to the registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetMongo()

	userRepo := mongodb.NewUserRepository(db)
	mealRepo := mongodb.NewMealRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	userSvc := app.NewUserService(userRepo, container.GetTokens(), logger)
	mealSvc := app.NewMealService(mealRepo, userRepo, logger)
	postSvc := app.NewPostService(postRepo, container.GetRedis(), container.GetGCS(), cfg.GCSBucket, cfg.FeedCacheTTL, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), userRepo, container.GetTokens()))
	r.Add(modules.NewMealModule(handlers.NewMealHandler(mealSvc, logger)))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger)))
}
