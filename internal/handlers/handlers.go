package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"SessionGuard/internal/api"
	"SessionGuard/internal/config"
	"SessionGuard/internal/middleware"
	"SessionGuard/internal/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(cfg *config.Config, logger *zap.SugaredLogger) (*Handler, error) {
	backend, err := url.Parse(cfg.BackendURL)
	if err != nil {
		return nil, fmt.Errorf("backend url: %w", err)
	}
	gate := cfg.Gate()

	// клиент для входа ходит прямо в бэкенд; токен берётся из контекста запроса
	client := api.New(cfg.BackendURL, session.ContextSource, logger)

	pages := NewPageHandler(logger)
	auth := NewAuthHandler(client, gate, cfg.CookieSecure, pages, logger)
	proxy := NewAPIProxy(backend, cfg.CookieSecure, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithSession(cfg.CookieSecure))

	// API не закрыт Gate: решение о доступе принимает бэкенд
	r.Handle("/api", proxy)
	r.Handle("/api/*", proxy)

	r.Group(func(r chi.Router) {
		r.Use(middleware.WithGzip)
		r.Use(middleware.WithGate(gate))

		r.Get(session.RootPath, pages.Page("Home"))
		r.Get(gate.Login(), auth.LoginForm)
		r.Post(gate.Login(), auth.LoginSubmit)
		r.Get("/users", pages.Page("Users"))
		r.Get("/orders", pages.Page("Orders"))
		r.Get("/logout", auth.Logout)
		r.Post("/logout", auth.Logout)
	})

	r.NotFound(middleware.WithGate(gate)(http.HandlerFunc(pages.NotFound)).ServeHTTP)

	return &Handler{Router: r}, nil
}
