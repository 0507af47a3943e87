// Package session держит контекст текущего пользователя на клиенте.
// Session — явный внедряемый объект: команды получают его снаружи,
// поэтому в тестах его легко заменить фейковым хранилищем и сервером.
package session

import (
	"context"
	"errors"

	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/cli/repo"
)

// ErrNotLoggedIn возвращается, когда операции нужен токен, а сессии нет.
var ErrNotLoggedIn = errors.New("not logged in: run login or register first")

// Session — текущий пользователь и токен, с персистентностью через SessionStore.
// Читать поля может кто угодно, менять их должна только сама Session.
type Session struct {
	client *api.Client
	store  repo.SessionStore

	user  *api.User
	token string
}

// New создаёт сессию и поднимает сохранённое состояние из хранилища, если оно есть.
func New(client *api.Client, store repo.SessionStore) *Session {
	s := &Session{client: client, store: store}
	if token, err := store.LoadToken(); err == nil {
		s.token = token
	}
	if user, err := store.LoadUser(); err == nil {
		s.user = user
	}
	return s
}

// Login обменивает учётные данные на токен, сохраняет их и наполняет сессию.
// Ошибка коллаборатора пробрасывается вызывающему без изменений.
func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.accept(resp)
}

// Register регистрирует пользователя и сразу наполняет сессию.
func (s *Session) Register(ctx context.Context, username, email, password string) error {
	resp, err := s.client.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	return s.accept(resp)
}

// Logout безусловно очищает сессию. Сетевых вызовов нет.
func (s *Session) Logout() error {
	s.user = nil
	s.token = ""
	return s.store.Clear()
}

// Current возвращает профиль текущего пользователя или nil.
func (s *Session) Current() *api.User {
	return s.user
}

// Token возвращает auth-токен сессии или ErrNotLoggedIn.
func (s *Session) Token() (string, error) {
	if s.token == "" {
		return "", ErrNotLoggedIn
	}
	return s.token, nil
}

// Client возвращает API-клиент, с которым создана сессия.
func (s *Session) Client() *api.Client {
	return s.client
}

func (s *Session) accept(resp *api.AuthResponse) error {
	if resp.Token == "" {
		return errors.New("no token in auth response")
	}
	s.token = resp.Token
	user := resp.User
	s.user = &user
	if err := s.store.SaveToken(resp.Token); err != nil {
		return err
	}
	return s.store.SaveUser(&user)
}
