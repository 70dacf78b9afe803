package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"SessionGuard/internal/api"
	"SessionGuard/internal/session"
	"SessionGuard/internal/session/store/cookie"

	"go.uber.org/zap"
)

// Loginer получает токен у бэкенда.
type Loginer interface {
	Login(ctx context.Context, username, password string) (session.Token, error)
}

// AuthHandler обрабатывает вход и выход.
type AuthHandler struct {
	Client Loginer
	Gate   session.Gate
	Secure bool
	Pages  *PageHandler
	Logger *zap.SugaredLogger
}

// NewAuthHandler создаёт хендлер входа/выхода
func NewAuthHandler(client Loginer, gate session.Gate, secure bool, pages *PageHandler, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{Client: client, Gate: gate, Secure: secure, Pages: pages, Logger: logger}
}

func (h *AuthHandler) loginPage(r *http.Request, username, errText string) pageData {
	return pageData{
		Title:       "Log in",
		Path:        r.URL.Path,
		Menu:        menuFor(r),
		Error:       errText,
		LoginForm:   true,
		LoginAction: h.Gate.Login(),
		Username:    username,
	}
}

// LoginForm показывает форму входа.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.Pages.render(w, http.StatusOK, h.loginPage(r, "", ""))
}

// LoginSubmit получает токен у бэкенда и сохраняет его в cookie браузера.
func (h *AuthHandler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")
	if username == "" || password == "" {
		h.Pages.render(w, http.StatusUnprocessableEntity, h.loginPage(r, username, "Username and password are required"))
		return
	}

	tok, err := h.Client.Login(r.Context(), username, password)
	if err != nil {
		var se *api.StatusError
		if errors.As(err, &se) && se.Code == http.StatusUnauthorized {
			h.Pages.render(w, http.StatusUnauthorized, h.loginPage(r, username, "Incorrect username or password"))
			return
		}
		h.Logger.Errorw("login failed", "user", username, "error", err)
		h.Pages.render(w, http.StatusBadGateway, h.loginPage(r, username, "Login service unavailable"))
		return
	}

	if err := session.SaveToken(r.Context(), cookie.New(w, r, h.Secure), tok.Value()); err != nil {
		h.Logger.Errorw("save token failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.Logger.Infow("user logged in", "user", username)
	http.Redirect(w, r, session.RootPath, http.StatusSeeOther)
}

// Logout удаляет токен и отправляет на страницу входа. Бэкенд не уведомляется.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	to, err := session.Logout(r.Context(), cookie.New(w, r, h.Secure), h.Gate)
	if err != nil {
		h.Logger.Errorw("logout failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}
