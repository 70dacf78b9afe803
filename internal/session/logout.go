package session

import "context"

// LogoutItemID — идентификатор пункта меню выхода.
const LogoutItemID = "logoutBtn"

// MenuItem — пункт меню страницы.
type MenuItem struct {
	ID    string
	Label string
	Href  string
}

// Menu — меню страницы.
type Menu struct {
	Items []MenuItem
}

// DefaultMenu — меню страниц приложения без пункта выхода. Каждый вызов
// возвращает новое меню.
func DefaultMenu() *Menu {
	return &Menu{Items: []MenuItem{
		{ID: "home", Label: "Home", Href: RootPath},
		{ID: "users", Label: "Users", Href: "/users"},
		{ID: "orders", Label: "Orders", Href: "/orders"},
	}}
}

// Has сообщает, есть ли пункт с указанным id.
func (m *Menu) Has(id string) bool {
	if m == nil {
		return false
	}
	for _, it := range m.Items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// LogoutItem — пункт меню "Log out".
func LogoutItem() MenuItem {
	return MenuItem{ID: LogoutItemID, Label: "Log out", Href: "/logout"}
}

// AttachLogout добавляет пункт выхода, если сессия есть. Отсутствие меню
// допустимо. Возвращает true, если пункт был добавлен.
func AttachLogout(m *Menu, tok Token) bool {
	if m == nil || !tok.Present() || m.Has(LogoutItemID) {
		return false
	}
	m.Items = append(m.Items, LogoutItem())
	return true
}

// Logout удаляет токен и возвращает путь, на который нужно перейти.
// Сервер о выходе не уведомляется.
func Logout(ctx context.Context, st Store, g Gate) (string, error) {
	if err := ClearToken(ctx, st); err != nil {
		return "", err
	}
	return g.Login(), nil
}
