package handlers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxy_AttachesBearerFromCookie(t *testing.T) {
	fb := newFakeBackend(t)
	h := newRouter(t, fb.URL)

	rr := serve(h, http.MethodGet, "/api/users", "tok-9", nil, http.Header{"X-Custom": {"keep-me"}})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"username":"alice"}]`, rr.Body.String())

	call := fb.last(t)
	assert.Equal(t, "/api/users", call.Path)
	assert.Equal(t, "Bearer tok-9", call.Authorization)
	assert.Equal(t, "keep-me", call.Custom)
}

func TestProxy_OpaqueTokenReachesBackendUnchanged(t *testing.T) {
	fb := newFakeBackend(t)
	h := newRouter(t, fb.URL)

	tok := `abc;def"ghi, j=k`
	rr := serve(h, http.MethodGet, "/api/users", tok, nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer "+tok, fb.last(t).Authorization)
}

func TestProxy_NoTokenNoHeader(t *testing.T) {
	fb := newFakeBackend(t)
	h := newRouter(t, fb.URL)

	rr := serve(h, http.MethodGet, "/api/users", "", nil, nil)
	// API не редиректит: отвечает бэкенд
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, fb.last(t).Authorization)
}

func TestProxy_LoginEndpointWithoutBearerAndStoresToken(t *testing.T) {
	fb := newFakeBackend(t)
	h := newRouter(t, fb.URL)

	form := url.Values{"username": {"alice"}, "password": {"secret"}}
	rr := serve(h, http.MethodPost, "/api/login", "old-token", strings.NewReader(form.Encode()), formHeader)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, fb.last(t).Authorization, "токен не должен уходить на /api/login")
	assert.Contains(t, rr.Body.String(), "tok-from-backend")

	c := tokenCookie(rr)
	require.NotNil(t, c)
	assert.Equal(t, "tok-from-backend", cookieToken(t, c))
}

func TestProxy_FailedLoginDoesNotTouchCookie(t *testing.T) {
	fb := newFakeBackend(t)
	h := newRouter(t, fb.URL)

	form := url.Values{"username": {"alice"}, "password": {"nope"}}
	rr := serve(h, http.MethodPost, "/api/login", "", strings.NewReader(form.Encode()), formHeader)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Nil(t, tokenCookie(rr))
}

func TestProxy_BackendDown(t *testing.T) {
	h := newRouter(t, "http://127.0.0.1:1")
	rr := serve(h, http.MethodGet, "/api/users", "tok", nil, nil)
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}
