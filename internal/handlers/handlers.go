package handlers

import (
	"StuffKeeper/internal/config"
	"StuffKeeper/internal/middleware"
	"StuffKeeper/internal/model/view"
	"StuffKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	UserPath  = "/api/user"
	StuffPath = "/api/stuff"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	stuffService *service.StuffService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	if config.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(config.RateLimitRPS, config.RateLimitBurst))
	}
	r.Use(middleware.WithAuth(config.AuthSecret, config.JWTIssuer, config.JWTAudience))

	errs := NewErrorTranslator(config.IsProduction(), logger)

	users := NewResourceHandler[view.User](userService, errs, UserPath, func(u *view.User) string { return u.ID })
	stuff := NewResourceHandler[view.Datum](stuffService, errs, StuffPath, func(d *view.Datum) string { return d.ID })

	r.Mount(UserPath, users.Routes(middleware.RequireAuth))
	r.Mount(StuffPath, stuff.Routes(middleware.RequireAuth))

	return &Handler{Router: r}
}
