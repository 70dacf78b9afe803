package session

import (
	"context"
	"errors"
	"sync"
)

// TokenKey — ключ, под которым токен лежит в хранилище.
const TokenKey = "token"

var (
	// ErrNoStore возвращается, если хранилище не передано.
	ErrNoStore = errors.New("session: no store configured")
	// ErrEmptyToken возвращается при попытке сохранить пустой токен.
	ErrEmptyToken = errors.New("session: empty token")
)

// Store — постоянное key-value хранилище на стороне клиента.
type Store interface {
	// Get возвращает значение и признак наличия ключа.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set создаёт или перезаписывает значение.
	Set(ctx context.Context, key, value string) error
	// Delete удаляет ключ. Удаление отсутствующего ключа не ошибка.
	Delete(ctx context.Context, key string) error
}

// LoadToken читает токен. Отсутствие токена — штатная ситуация, а не ошибка.
func LoadToken(ctx context.Context, st Store) (Token, error) {
	if st == nil {
		return NoToken, ErrNoStore
	}
	v, ok, err := st.Get(ctx, TokenKey)
	if err != nil {
		return NoToken, err
	}
	if !ok {
		return NoToken, nil
	}
	return TokenFromString(v), nil
}

// SaveToken сохраняет токен, перезаписывая предыдущий.
func SaveToken(ctx context.Context, st Store, token string) error {
	if st == nil {
		return ErrNoStore
	}
	if token == "" {
		return ErrEmptyToken
	}
	return st.Set(ctx, TokenKey, token)
}

// ClearToken удаляет токен из хранилища.
func ClearToken(ctx context.Context, st Store) error {
	if st == nil {
		return ErrNoStore
	}
	return st.Delete(ctx, TokenKey)
}

// MemoryStore — хранилище в памяти процесса.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore создаёт пустое хранилище.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
