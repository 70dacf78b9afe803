package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"SessionGuard/internal/api"
	"SessionGuard/internal/session"
	"SessionGuard/internal/session/store/cookie"

	"go.uber.org/zap"
)

// NewAPIProxy проксирует /api/* на бэкенд. Транспорт прокси — augmenter,
// который берёт токен из контекста запроса (cookie браузера).
// Успешный ответ /api/login дополнительно сохраняет токен в cookie.
func NewAPIProxy(backend *url.URL, secure bool, logger *zap.SugaredLogger) http.Handler {
	rp := httputil.NewSingleHostReverseProxy(backend)
	rp.Transport = session.Augment(http.DefaultTransport, session.ContextSource, session.WithLogger(logger))
	rp.ModifyResponse = func(resp *http.Response) error {
		if resp.StatusCode != http.StatusOK || !strings.Contains(resp.Request.URL.Path, session.DefaultLoginEndpoint) {
			return nil
		}
		return persistLoginToken(resp, secure)
	}
	rp.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Errorw("backend request failed", "method", r.Method, "uri", r.RequestURI, "error", err)
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
	}
	return rp
}

// persistLoginToken читает access_token из тела ответа и добавляет Set-Cookie.
// Тело возвращается клиенту без изменений.
func persistLoginToken(resp *http.Response, secure bool) error {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return err
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	var lr api.LoginResponse
	if json.Unmarshal(body, &lr) != nil || lr.AccessToken == "" {
		return nil
	}
	rec := headerWriter{h: resp.Header}
	return session.SaveToken(resp.Request.Context(), cookie.New(rec, resp.Request, secure), lr.AccessToken)
}

// headerWriter даёт cookie.Store записать Set-Cookie в заголовки ответа бэкенда.
type headerWriter struct{ h http.Header }

func (w headerWriter) Header() http.Header         { return w.h }
func (w headerWriter) Write(b []byte) (int, error) { return len(b), nil }
func (w headerWriter) WriteHeader(int)             {}
