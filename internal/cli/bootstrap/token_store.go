package bootstrap

import (
	"fmt"

	"SessionGuard/internal/config"
	"SessionGuard/internal/session"
	fsstore "SessionGuard/internal/session/store/fs"
	sqlitestore "SessionGuard/internal/session/store/sqlite"
)

// OpenTokenStore открывает хранилище токена, выбранное в конфиге,
// и возвращает (store, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть соединение с БД.
func OpenTokenStore(cfg *config.Config) (session.Store, func() error, error) {
	switch cfg.TokenStore {
	case config.StoreSQLite:
		st, err := sqlitestore.Open(cfg.ClientDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open token db: %w", err)
		}
		if err := st.Migrate(); err != nil {
			_ = st.Close()
			return nil, nil, fmt.Errorf("migrate token db: %w", err)
		}
		return st, st.Close, nil
	case config.StoreFile, "":
		st, err := fsstore.New(cfg.TokenDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open token dir: %w", err)
		}
		return st, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown token store %q", cfg.TokenStore)
	}
}
