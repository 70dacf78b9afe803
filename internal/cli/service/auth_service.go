package service

import (
	"context"
	"fmt"

	"SessionGuard/internal/session"
)

// Loginer получает токен у API.
type Loginer interface {
	Login(ctx context.Context, username, password string) (session.Token, error)
}

// AuthService — юзкейс-уровень сессии CLI поверх локального хранилища токена.
type AuthService struct {
	store  session.Store
	client Loginer
	gate   session.Gate
}

// NewAuthService создаёт сервис.
func NewAuthService(store session.Store, client Loginer, gate session.Gate) *AuthService {
	return &AuthService{store: store, client: client, gate: gate}
}

// Login получает токен и перезаписывает сохранённый. При ошибке входа
// сохранённый токен не трогается.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	tok, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := session.SaveToken(ctx, s.store, tok.Value()); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

// Logout очищает локальный токен и возвращает путь страницы входа.
func (s *AuthService) Logout(ctx context.Context) (string, error) {
	return session.Logout(ctx, s.store, s.gate)
}

// Current возвращает текущий токен; отсутствие токена не ошибка.
func (s *AuthService) Current(ctx context.Context) (session.Token, error) {
	return session.LoadToken(ctx, s.store)
}
