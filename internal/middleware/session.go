package middleware

import (
	"net/http"

	"SessionGuard/internal/session"
	"SessionGuard/internal/session/store/cookie"
)

// WithSession читает токен из cookie и кладёт его в контекст запроса.
// Проверок нет: токен непрозрачен.
func WithSession(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok, err := session.LoadToken(r.Context(), cookie.New(w, r, secure))
			if err != nil {
				sugar.Warnw("token cookie unreadable", "error", err)
				tok = session.NoToken
			}
			next.ServeHTTP(w, r.WithContext(session.WithToken(r.Context(), tok)))
		})
	}
}

// WithGate пускает на страницу только при наличии токена, кроме публичных путей.
// Иначе — редирект на страницу входа; дальнейшие обработчики не вызываются.
func WithGate(g session.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := g.Check(r.URL.Path, session.TokenFromContext(r.Context()))
			if !d.Allowed {
				sugar.Infow("redirecting to login", "path", r.URL.Path, "to", d.RedirectTo)
				http.Redirect(w, r, d.RedirectTo, http.StatusSeeOther)
				return
			}
			if !g.IsPublic(r.URL.Path) {
				// защищённые страницы не кэшируем
				w.Header().Add("Cache-Control", "no-store")
			}
			next.ServeHTTP(w, r)
		})
	}
}
