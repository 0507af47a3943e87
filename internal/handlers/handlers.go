package handlers

import (
	"ItemKeeper/internal/config"
	"ItemKeeper/internal/middleware"
	"ItemKeeper/internal/service"
	"ItemKeeper/internal/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	itemService *service.ItemService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	itemHandler := NewItemHandler(itemService, logger, config)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Get("/api/user/me", userHandler.Me)

	// Item routes
	r.Get("/api/items", itemHandler.List)
	r.Post("/api/items", itemHandler.Create)
	r.Put("/api/items/{id}", itemHandler.Update)
	r.Delete("/api/items/{id}", itemHandler.Delete)

	// Встроенный single-page дашборд
	r.Handle("/*", web.Handler())

	return &Handler{Router: r}
}
