// Package fs — файловое key-value хранилище сессии: один файл на ключ.
package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"SessionGuard/internal/session"
)

// AppDirName — каталог приложения внутри пользовательского конфиг-каталога.
const AppDirName = "SessionGuard"

var keyRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Store хранит значения в файлах каталога Dir.
type Store struct {
	dir string
}

var _ session.Store = (*Store)(nil)

// New создаёт хранилище в dir. Пустой dir — <UserConfigDir>/SessionGuard.
func New(dir string) (*Store, error) {
	if dir == "" {
		cfg, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(cfg, AppDirName)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir возвращает каталог хранилища.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(key string) (string, error) {
	if !keyRe.MatchString(key) {
		return "", fmt.Errorf("invalid key: %q", key)
	}
	return filepath.Join(s.dir, key), nil
}

// Get читает значение ключа. Пустой файл считается отсутствием значения.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	// обрезаем завершающие переводы строки/пробелы
	b = bytes.TrimRight(b, " \t\r\n")
	if len(b) == 0 {
		return "", false, nil
	}
	return string(b), true, nil
}

// Set записывает значение в файл с правами 0600.
func (s *Store) Set(_ context.Context, key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

// Delete удаляет файл ключа.
func (s *Store) Delete(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
