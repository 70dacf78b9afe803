package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadToken_MissingIsNotAnError(t *testing.T) {
	st := NewMemoryStore()
	tok, err := LoadToken(context.Background(), st)
	require.NoError(t, err)
	assert.False(t, tok.Present())
}

func TestLoadToken_EmptyValueIsAbsent(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.Set(ctx, TokenKey, ""))

	tok, err := LoadToken(ctx, st)
	require.NoError(t, err)
	assert.False(t, tok.Present())
}

func TestSaveAndClearToken(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	require.NoError(t, SaveToken(ctx, st, "tok-1"))
	tok, err := LoadToken(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok.Value())

	// перезапись
	require.NoError(t, SaveToken(ctx, st, "tok-2"))
	tok, _ = LoadToken(ctx, st)
	assert.Equal(t, "tok-2", tok.Value())

	require.NoError(t, ClearToken(ctx, st))
	tok, _ = LoadToken(ctx, st)
	assert.False(t, tok.Present())

	// повторное удаление не ошибка
	require.NoError(t, ClearToken(ctx, st))
}

func TestTokenHelpers_NilStoreAndEmptyToken(t *testing.T) {
	ctx := context.Background()
	_, err := LoadToken(ctx, nil)
	assert.ErrorIs(t, err, ErrNoStore)
	assert.ErrorIs(t, SaveToken(ctx, nil, "x"), ErrNoStore)
	assert.ErrorIs(t, ClearToken(ctx, nil), ErrNoStore)
	assert.ErrorIs(t, SaveToken(ctx, NewMemoryStore(), ""), ErrEmptyToken)
}

func TestContextSource(t *testing.T) {
	ctx := context.Background()
	tok, err := ContextSource.Token(ctx)
	require.NoError(t, err)
	assert.False(t, tok.Present())

	ctx = WithToken(ctx, TokenFromString("ctx-tok"))
	tok, err = ContextSource.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ctx-tok", tok.Value())
}
