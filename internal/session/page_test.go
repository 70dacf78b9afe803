package session

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("broken")
}
func (brokenStore) Set(context.Context, string, string) error { return errors.New("broken") }
func (brokenStore) Delete(context.Context, string) error      { return errors.New("broken") }

func newMenu() *Menu {
	return &Menu{Items: []MenuItem{{ID: "users", Label: "Users", Href: "/users"}}}
}

func TestPageLoad_RedirectsWithoutToken(t *testing.T) {
	c := &http.Client{}
	p := &Page{Store: NewMemoryStore(), Gate: DefaultGate(), Client: c}
	menu := newMenu()

	st := p.Load(context.Background(), "/orders", menu)
	assert.False(t, st.Decision.Allowed)
	assert.Equal(t, "/login", st.Decision.RedirectTo)
	assert.Nil(t, st.Menu)
	assert.Len(t, menu.Items, 1, "при редиректе меню не трогаем")
	// augmenter ставится до проверки
	assert.True(t, IsAugmented(c.Transport))
}

func TestPageLoad_PublicPageWithoutToken(t *testing.T) {
	p := &Page{Store: NewMemoryStore(), Gate: DefaultGate()}
	menu := newMenu()

	st := p.Load(context.Background(), "/", menu)
	assert.True(t, st.Decision.Allowed)
	assert.False(t, st.Menu.Has(LogoutItemID))
}

func TestPageLoad_AuthenticatedGetsLogout(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, SaveToken(ctx, store, "tok"))
	c := &http.Client{}
	p := &Page{Store: store, Gate: DefaultGate(), Client: c}

	st := p.Load(ctx, "/users", newMenu())
	assert.True(t, st.Decision.Allowed)
	assert.True(t, st.Menu.Has(LogoutItemID))

	// повторная загрузка не переустанавливает augmenter
	rt := c.Transport
	p.Load(ctx, "/users", newMenu())
	assert.Same(t, rt, c.Transport)
}

func TestPageLoad_BrokenStoreTreatedAsNoSession(t *testing.T) {
	p := &Page{Store: brokenStore{}, Gate: DefaultGate()}
	st := p.Load(context.Background(), "/users", newMenu())
	assert.False(t, st.Decision.Allowed)
	assert.False(t, st.Token.Present())
}
