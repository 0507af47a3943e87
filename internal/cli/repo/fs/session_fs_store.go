package fs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"ItemKeeper/internal/cli/api"
)

// SessionFSStore — файловое хранилище токена и профиля пользователя для CLI.
// Сессия переживает перезапуск процесса (аналог local storage в браузере).
type SessionFSStore struct{}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "ItemKeeper")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func tokenPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "auth_token"), nil
}

func profilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profile.json"), nil
}

// SaveToken сохраняет auth-токен в файл.
func (SessionFSStore) SaveToken(token string) error {
	p, err := tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// LoadToken читает auth-токен из файла.
func (SessionFSStore) LoadToken() (string, error) {
	p, err := tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return string(b), nil
}

// SaveUser сохраняет профиль пользователя в файл.
func (SessionFSStore) SaveUser(user *api.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	p, err := profilePath()
	if err != nil {
		return err
	}
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// LoadUser читает профиль пользователя из файла.
func (SessionFSStore) LoadUser() (*api.User, error) {
	p, err := profilePath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	var u api.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Clear удаляет файлы токена и профиля. Отсутствие файлов не ошибка.
func (SessionFSStore) Clear() error {
	tp, err := tokenPath()
	if err != nil {
		return err
	}
	pp, err := profilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(tp); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.Remove(pp); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
