package session

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// PageState — итог загрузки страницы.
type PageState struct {
	Path     string
	Token    Token
	Decision Decision
	// Menu заполнен, только если страница разрешена.
	Menu *Menu
}

// Page связывает хранилище, Gate и HTTP-клиент страницы.
type Page struct {
	Store  Store
	Gate   Gate
	Client *http.Client
	Logger *zap.SugaredLogger
}

// Load выполняет загрузку страницы path: ставит augmenter на клиент,
// проверяет доступ и, если доступ есть, добавляет выход в меню.
// При отказе меню не трогается.
func (p *Page) Load(ctx context.Context, path string, menu *Menu) PageState {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if p.Client != nil {
		Install(p.Client, StoreSource(p.Store), WithLogger(logger))
	}

	tok, err := LoadToken(ctx, p.Store)
	if err != nil {
		// нечитаемое хранилище трактуем как отсутствие сессии
		logger.Warnw("token store unavailable", "error", err)
		tok = NoToken
	}
	logger.Debugw("page load", "path", path, "token", tok.String())

	st := PageState{Path: path, Token: tok, Decision: p.Gate.Check(path, tok)}
	if !st.Decision.Allowed {
		logger.Infow("redirecting to login, no token", "path", path, "to", st.Decision.RedirectTo)
		return st
	}
	AttachLogout(menu, tok)
	st.Menu = menu
	return st
}
