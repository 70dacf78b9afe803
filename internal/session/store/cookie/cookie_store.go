// Package cookie хранит значения сессии в cookie браузера: одна пара
// запрос/ответ — одно хранилище.
package cookie

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"SessionGuard/internal/session"
)

// MaxAge — срок жизни cookie с токеном.
const MaxAge = 30 * 24 * time.Hour

// Encode переводит значение в base64url без паддинга: cookie не может
// нести ';', '"', пробелы и не-ASCII байты, а токен непрозрачен.
func Encode(value string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(value))
}

// Decode обратна Encode.
func Decode(raw string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Store читает cookie из запроса и пишет Set-Cookie в ответ.
type Store struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
	// pending — значения, записанные в рамках этого запроса
	pending map[string]*string
}

var _ session.Store = (*Store)(nil)

// New создаёт хранилище для одного запроса.
func New(w http.ResponseWriter, r *http.Request, secure bool) *Store {
	return &Store{r: r, w: w, secure: secure, pending: map[string]*string{}}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	if v, ok := s.pending[key]; ok {
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}
	c, err := s.r.Cookie(key)
	if err != nil {
		// http.ErrNoCookie — штатная ситуация
		return "", false, nil
	}
	v, err := Decode(c.Value)
	if err != nil || v == "" {
		// чужое или испорченное значение: сессии нет
		return "", false, nil
	}
	return v, true, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    Encode(value),
		Path:     "/",
		MaxAge:   int(MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.pending[key] = &value
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.pending[key] = nil
	return nil
}
