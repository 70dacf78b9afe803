package commands

import (
	"SessionGuard/internal/api"
	"SessionGuard/internal/cli/bootstrap"
	"SessionGuard/internal/cli/service"
	"SessionGuard/internal/config"
	"SessionGuard/internal/session"

	"go.uber.org/zap"
)

var logger = zap.NewNop().Sugar()

// SetLogger задаёт логгер для команд.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		logger = l
	}
}

// cliSession — хранилище токена, политика страниц и API-клиент одной команды.
type cliSession struct {
	store  session.Store
	gate   session.Gate
	client *api.Client
	auth   *service.AuthService
	done   func() error
}

func openSession(cfg *config.Config) (*cliSession, error) {
	st, done, err := bootstrap.OpenTokenStore(cfg)
	if err != nil {
		return nil, err
	}
	gate := cfg.Gate()
	client := api.New(cfg.ServerURL, session.StoreSource(st), logger)
	return &cliSession{
		store:  st,
		gate:   gate,
		client: client,
		auth:   service.NewAuthService(st, client, gate),
		done:   done,
	}, nil
}

func (s *cliSession) Close() error { return s.done() }
