package router

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/quillpress/quillpress/config"
	"github.com/quillpress/quillpress/internal/application"
	pginfra "github.com/quillpress/quillpress/internal/infrastructure/postgres"
	handlers "github.com/quillpress/quillpress/internal/interface/http"
	"github.com/quillpress/quillpress/internal/router/modules"
	"github.com/quillpress/quillpress/pkg/helpers"
)

// Deps are the shared singletons built in cmd/api and threaded explicitly
// through module construction.
type Deps struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client
	JWT    *helpers.JWTManager
	Pub    *helpers.RabbitPublisher
}

// InitModules builds repositories, services, and handlers and registers all
// feature modules with the registry. Called once during startup.
func InitModules(r *Registry, d Deps) {
	userRepo := pginfra.NewUserRepository(d.Pool)
	postRepo := pginfra.NewPostRepository(d.Pool)

	var pub application.EmailPublisher
	if d.Pub != nil && d.Cfg.MailSendEnabled {
		pub = d.Pub
	}

	authSvc := application.NewAuthService(userRepo, d.JWT, pub, d.Logger, d.Cfg.AppName)
	postSvc := application.NewPostService(postRepo, d.Logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, d.Logger), d.Redis))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, d.Logger), d.JWT, d.Redis))
	r.Add(modules.NewHealthModule(d.Pool))
}
