package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_PresenceAndBearer(t *testing.T) {
	assert.False(t, NoToken.Present())
	assert.False(t, TokenFromString("").Present(), "пустая строка — это отсутствие сессии")
	assert.Equal(t, "", NoToken.Bearer())

	tok := TokenFromString("abc.def.ghi")
	assert.True(t, tok.Present())
	assert.Equal(t, "abc.def.ghi", tok.Value())
	assert.Equal(t, "Bearer abc.def.ghi", tok.Bearer())
}

func TestToken_StringDoesNotLeakValue(t *testing.T) {
	assert.Equal(t, "<none>", NoToken.String())
	assert.Equal(t, "***", TokenFromString("short").String())

	s := TokenFromString("eyJhbGciOiJIUzI1NiJ9.payload.signature").String()
	assert.NotContains(t, s, "payload")
	assert.Equal(t, "eyJh…ture", s)
}
