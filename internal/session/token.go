// Package session содержит клиентскую защиту сессии: хранение токена,
// проверку доступа к страницам (Gate), подстановку bearer-токена в исходящие
// запросы и выход из сессии.
package session

// Token — непрозрачный токен сессии. Нулевое значение означает отсутствие сессии:
// пустая строка и отсутствующий ключ в хранилище не различаются.
type Token struct {
	value string
}

// NoToken — отсутствующий токен.
var NoToken = Token{}

// TokenFromString оборачивает сырое значение из хранилища.
func TokenFromString(s string) Token {
	return Token{value: s}
}

// Present сообщает, есть ли сессия.
func (t Token) Present() bool { return t.value != "" }

// Value возвращает сырое значение токена.
func (t Token) Value() string { return t.value }

// Bearer возвращает значение заголовка Authorization.
func (t Token) Bearer() string {
	if !t.Present() {
		return ""
	}
	return "Bearer " + t.value
}

// String не раскрывает токен целиком, чтобы его можно было писать в лог.
func (t Token) String() string {
	if !t.Present() {
		return "<none>"
	}
	if len(t.value) <= 8 {
		return "***"
	}
	return t.value[:4] + "…" + t.value[len(t.value)-4:]
}
