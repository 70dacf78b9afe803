package session

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// DefaultLoginEndpoint — запросы на этот адрес уходят без токена.
const DefaultLoginEndpoint = "/api/login"

// Option настраивает augmenter.
type Option func(*augmenter)

// WithLoginEndpoint меняет подстроку URL, для которой токен не добавляется.
func WithLoginEndpoint(endpoint string) Option {
	return func(a *augmenter) {
		if endpoint != "" {
			a.loginEndpoint = endpoint
		}
	}
}

// WithLogger задаёт логгер.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(a *augmenter) {
		if l != nil {
			a.logger = l
		}
	}
}

type augmenter struct {
	base          http.RoundTripper
	src           TokenSource
	loginEndpoint string
	logger        *zap.SugaredLogger
}

// Augment оборачивает base так, что каждый запрос (кроме login) получает
// заголовок Authorization: Bearer <token>, если токен есть.
// Повторное оборачивание уже обёрнутого транспорта возвращает его без изменений.
func Augment(base http.RoundTripper, src TokenSource, opts ...Option) http.RoundTripper {
	if a, ok := base.(*augmenter); ok {
		return a
	}
	if base == nil {
		base = http.DefaultTransport
	}
	a := &augmenter{
		base:          base,
		src:           src,
		loginEndpoint: DefaultLoginEndpoint,
		logger:        zap.NewNop().Sugar(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// IsAugmented сообщает, обёрнут ли транспорт.
func IsAugmented(rt http.RoundTripper) bool {
	_, ok := rt.(*augmenter)
	return ok
}

// Install ставит augmenter в клиент. Возвращает false, если он уже стоит.
func Install(c *http.Client, src TokenSource, opts ...Option) bool {
	if c == nil || IsAugmented(c.Transport) {
		return false
	}
	c.Transport = Augment(c.Transport, src, opts...)
	return true
}

// RoundTrip никогда не меняет исходный запрос и всегда делегирует базовому
// транспорту; его ошибки возвращаются как есть.
func (a *augmenter) RoundTrip(req *http.Request) (*http.Response, error) {
	if a.src == nil || strings.Contains(req.URL.String(), a.loginEndpoint) {
		return a.base.RoundTrip(req)
	}
	tok, err := a.src.Token(req.Context())
	if err != nil {
		a.logger.Warnw("token lookup failed, sending request without auth",
			"url", req.URL.Redacted(),
			"error", err,
		)
		return a.base.RoundTrip(req)
	}
	if !tok.Present() {
		return a.base.RoundTrip(req)
	}

	r := req.Clone(req.Context())
	r.Header.Set("Authorization", tok.Bearer())
	a.logger.Debugw("attaching bearer token", "method", r.Method, "url", r.URL.Redacted())
	return a.base.RoundTrip(r)
}
