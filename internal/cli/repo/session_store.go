package repo

import "ItemKeeper/internal/cli/api"

// SessionStore описывает абстракцию хранилища клиентской сессии:
// auth-токен и профиль текущего пользователя.
type SessionStore interface {
	SaveToken(token string) error
	LoadToken() (string, error)
	SaveUser(user *api.User) error
	LoadUser() (*api.User, error)
	// Clear удаляет сохранённые токен и профиль.
	Clear() error
}
