package session

import "context"

// TokenSource отдаёт текущий токен для исходящего запроса.
type TokenSource interface {
	Token(ctx context.Context) (Token, error)
}

// TokenSourceFunc адаптирует функцию к TokenSource.
type TokenSourceFunc func(ctx context.Context) (Token, error)

func (f TokenSourceFunc) Token(ctx context.Context) (Token, error) { return f(ctx) }

// StoreSource читает токен из хранилища на каждый запрос, поэтому logout
// и повторный login видны сразу.
func StoreSource(st Store) TokenSource {
	return TokenSourceFunc(func(ctx context.Context) (Token, error) {
		return LoadToken(ctx, st)
	})
}

type tokenCtxKey struct{}

// WithToken кладёт токен в контекст.
func WithToken(ctx context.Context, tok Token) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, tok)
}

// TokenFromContext достаёт токен из контекста; NoToken, если его там нет.
func TokenFromContext(ctx context.Context) Token {
	if tok, ok := ctx.Value(tokenCtxKey{}).(Token); ok {
		return tok
	}
	return NoToken
}

// ContextSource берёт токен из контекста запроса (см. WithToken).
var ContextSource TokenSource = TokenSourceFunc(func(ctx context.Context) (Token, error) {
	return TokenFromContext(ctx), nil
})
