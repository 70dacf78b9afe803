package session

const (
	// RootPath — корень приложения, всегда публичный.
	RootPath = "/"
	// DefaultLoginPath — страница входа.
	DefaultLoginPath = "/login"
)

// Gate решает, можно ли показать страницу или нужен редирект на вход.
type Gate struct {
	// LoginPath — куда отправлять неаутентифицированного пользователя.
	LoginPath string
	// PublicPaths открыты без токена. Сравнение точное.
	// nil означает "/" и LoginPath.
	PublicPaths []string
}

// Decision — результат проверки Gate.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// DefaultGate открывает "/" и "/login", остальное требует токен.
func DefaultGate() Gate {
	return Gate{
		LoginPath:   DefaultLoginPath,
		PublicPaths: []string{RootPath, DefaultLoginPath},
	}
}

// Login возвращает путь страницы входа.
func (g Gate) Login() string {
	if g.LoginPath == "" {
		return DefaultLoginPath
	}
	return g.LoginPath
}

// IsPublic сообщает, открыт ли путь без токена. Страница входа открыта всегда,
// иначе редирект зациклится.
func (g Gate) IsPublic(path string) bool {
	if path == g.Login() {
		return true
	}
	public := g.PublicPaths
	if public == nil {
		public = []string{RootPath}
	}
	for _, p := range public {
		if p == path {
			return true
		}
	}
	return false
}

// Check проверяет доступ к странице path при токене tok.
func (g Gate) Check(path string, tok Token) Decision {
	if g.IsPublic(path) || tok.Present() {
		return Decision{Allowed: true}
	}
	return Decision{RedirectTo: g.Login()}
}
