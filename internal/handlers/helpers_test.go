package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"SessionGuard/internal/config"
	"SessionGuard/internal/handlers"
	"SessionGuard/internal/session"
	"SessionGuard/internal/session/store/cookie"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// мок для handlers.Loginer
type mockLoginer struct{ mock.Mock }

func (m *mockLoginer) Login(ctx context.Context, username, password string) (session.Token, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(session.Token), args.Error(1)
}

var _ handlers.Loginer = (*mockLoginer)(nil)

// backendCall — что увидел бэкенд.
type backendCall struct {
	Path          string
	Authorization string
	Custom        string
}

// fakeBackend имитирует API-шлюз: /api/login выдаёт токен, /api/users требует bearer.
type fakeBackend struct {
	*httptest.Server
	mu    sync.Mutex
	calls []backendCall
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{}
	fb.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.calls = append(fb.calls, backendCall{
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Custom:        r.Header.Get("X-Custom"),
		})
		fb.mu.Unlock()

		switch r.URL.Path {
		case "/api/login":
			if r.PostFormValue("password") != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"detail":"Incorrect username or password"}`)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"access_token":"tok-from-backend","token_type":"bearer"}`)
		case "/api/users":
			if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"detail":"Not authenticated"}`)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `[{"id":1,"username":"alice"}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(fb.Close)
	return fb
}

func (fb *fakeBackend) last(t *testing.T) backendCall {
	t.Helper()
	fb.mu.Lock()
	defer fb.mu.Unlock()
	require.NotEmpty(t, fb.calls)
	return fb.calls[len(fb.calls)-1]
}

func newRouter(t *testing.T, backendURL string) http.Handler {
	t.Helper()
	cfg := &config.Config{
		BackendURL:  backendURL,
		LoginPath:   "/login",
		PublicPaths: []string{"/", "/login"},
	}
	h, err := handlers.NewHandler(cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	return h.Router
}

// serve выполняет запрос к роутеру; token != "" добавляет cookie сессии.
func serve(h http.Handler, method, target, token string, body io.Reader, hdr http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for k, vv := range hdr {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.TokenKey, Value: cookie.Encode(token)})
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func tokenCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == session.TokenKey {
			return c
		}
	}
	return nil
}

// cookieToken возвращает токен из выставленной cookie.
func cookieToken(t *testing.T, c *http.Cookie) string {
	t.Helper()
	require.NotNil(t, c)
	v, err := cookie.Decode(c.Value)
	require.NoError(t, err)
	return v
}

var formHeader = http.Header{"Content-Type": {"application/x-www-form-urlencoded"}}
