package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"SessionGuard/internal/session"

	"go.uber.org/zap"
)

// DefaultTimeout — таймаут одного запроса к API.
const DefaultTimeout = 15 * time.Second

// StatusError — ответ API с неуспешным статусом.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server status %d", e.Code)
	}
	return fmt.Sprintf("server status %d: %s", e.Code, e.Detail)
}

// LoginResponse — ответ /api/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Client — HTTP-клиент API, транспорт которого подставляет bearer-токен.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.SugaredLogger
}

// New создаёт клиент к baseURL. Токен для запросов берётся из src.
func New(baseURL string, src session.TokenSource, logger *zap.SugaredLogger) *Client {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: session.Augment(http.DefaultTransport, src, session.WithLogger(logger)),
			Timeout:   DefaultTimeout,
		},
		logger: logger,
	}
}

// HTTPClient возвращает нижележащий http.Client.
func (c *Client) HTTPClient() *http.Client { return c.http }

// URL склеивает baseURL и путь.
func (c *Client) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// Do отправляет запрос. Заголовки header передаются без изменений.
// Ошибки транспорта возвращаются как есть; статус ответа не проверяется.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader, header http.Header) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), body)
	if err != nil {
		return nil, nil, err
	}
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("read body: %w", err)
	}
	return resp, b, nil
}

// Login отправляет OAuth2 password-форму на /api/login и возвращает токен.
// Сохранение токена — забота вызывающего.
func (c *Client) Login(ctx context.Context, username, password string) (session.Token, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)

	h := http.Header{}
	h.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, body, err := c.Do(ctx, http.MethodPost, session.DefaultLoginEndpoint, strings.NewReader(form.Encode()), h)
	if err != nil {
		return session.NoToken, err
	}
	if resp.StatusCode != http.StatusOK {
		return session.NoToken, statusError(resp.StatusCode, body)
	}
	var lr LoginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return session.NoToken, fmt.Errorf("decode login response: %w", err)
	}
	tok := session.TokenFromString(lr.AccessToken)
	if !tok.Present() {
		return session.NoToken, fmt.Errorf("login response without access_token")
	}
	c.logger.Infow("logged in", "user", username, "token_type", lr.TokenType)
	return tok, nil
}

// GetJSON выполняет GET и декодирует JSON-ответ в dst.
func (c *Client) GetJSON(ctx context.Context, path string, dst any) error {
	h := http.Header{}
	h.Set("Accept", "application/json")
	resp, body, err := c.Do(ctx, http.MethodGet, path, nil, h)
	if err != nil {
		return err
	}
	return decode(resp, body, dst)
}

// PostJSON отправляет payload как JSON и декодирует ответ в dst (если dst не nil).
func (c *Client) PostJSON(ctx context.Context, path string, payload, dst any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	resp, body, err := c.Do(ctx, http.MethodPost, path, bytes.NewReader(b), h)
	if err != nil {
		return err
	}
	return decode(resp, body, dst)
}

func decode(resp *http.Response, body []byte, dst any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, body)
	}
	if dst == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

func statusError(code int, body []byte) *StatusError {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Detail != "" {
		return &StatusError{Code: code, Detail: er.Detail}
	}
	return &StatusError{Code: code, Detail: strings.TrimSpace(string(body))}
}
