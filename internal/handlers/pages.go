package handlers

import (
	"bytes"
	"net/http"

	"SessionGuard/internal/session"

	"go.uber.org/zap"
)

type pageData struct {
	Title       string
	Path        string
	Menu        *session.Menu
	Error       string
	LoginForm   bool
	LoginAction string
	Username    string
}

// PageHandler рендерит страницы приложения.
type PageHandler struct {
	Logger *zap.SugaredLogger
}

// NewPageHandler создаёт хендлер страниц
func NewPageHandler(logger *zap.SugaredLogger) *PageHandler {
	return &PageHandler{Logger: logger}
}

// menuFor строит меню страницы; выход добавляется только при наличии сессии.
func menuFor(r *http.Request) *session.Menu {
	m := session.DefaultMenu()
	session.AttachLogout(m, session.TokenFromContext(r.Context()))
	return m
}

// Page отдаёт страницу с заголовком title.
func (h *PageHandler) Page(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, http.StatusOK, pageData{Title: title, Path: r.URL.Path, Menu: menuFor(r)})
	}
}

// NotFound — страница 404.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, pageData{Title: "Not found", Path: r.URL.Path, Menu: menuFor(r)})
}

func (h *PageHandler) render(w http.ResponseWriter, status int, data pageData) {
	buf := new(bytes.Buffer)
	if err := pageTemplate.Execute(buf, data); err != nil {
		h.Logger.Errorw("render failed", "path", data.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
