package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ItemKeeper/internal/cli/api"
)

// memStore — хранилище сессии в памяти для тестов.
type memStore struct {
	token string
	user  *api.User
}

func (m *memStore) SaveToken(token string) error { m.token = token; return nil }
func (m *memStore) LoadToken() (string, error) {
	if m.token == "" {
		return "", errors.New("no token")
	}
	return m.token, nil
}
func (m *memStore) SaveUser(user *api.User) error { m.user = user; return nil }
func (m *memStore) LoadUser() (*api.User, error) {
	if m.user == nil {
		return nil, errors.New("no user")
	}
	return m.user, nil
}
func (m *memStore) Clear() error { m.token = ""; m.user = nil; return nil }

func authServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":1,"username":"alice","email":"alice@example.com"}}`))
	}))
}

func TestSession_Login_PersistsTokenAndProfile(t *testing.T) {
	ts := authServer(t)
	defer ts.Close()

	store := &memStore{}
	sess := New(api.New(ts.URL), store)
	if err := sess.Login(context.Background(), "alice@example.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok, err := sess.Token(); err != nil || tok != "tok-1" {
		t.Fatalf("token after login: %q err=%v", tok, err)
	}
	if sess.Current() == nil || sess.Current().Username != "alice" {
		t.Fatalf("profile after login: %+v", sess.Current())
	}
	// состояние должно попасть в хранилище
	if store.token != "tok-1" || store.user == nil || store.user.ID != 1 {
		t.Fatalf("store not updated: token=%q user=%+v", store.token, store.user)
	}
}

func TestSession_New_RestoresPersistedState(t *testing.T) {
	store := &memStore{token: "tok-old", user: &api.User{ID: 2, Username: "bob"}}
	sess := New(api.New("http://localhost:1"), store)
	if tok, err := sess.Token(); err != nil || tok != "tok-old" {
		t.Fatalf("restored token: %q err=%v", tok, err)
	}
	if sess.Current() == nil || sess.Current().Username != "bob" {
		t.Fatalf("restored profile: %+v", sess.Current())
	}
}

func TestSession_Logout_ClearsEverything(t *testing.T) {
	store := &memStore{token: "tok", user: &api.User{ID: 1, Username: "alice"}}
	sess := New(api.New("http://localhost:1"), store)
	if err := sess.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := sess.Token(); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
	if sess.Current() != nil {
		t.Fatalf("profile should be nil after logout")
	}
	if store.token != "" || store.user != nil {
		t.Fatalf("store not cleared")
	}
}

func TestSession_Login_ErrorDoesNotTouchSession(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer ts.Close()

	store := &memStore{}
	sess := New(api.New(ts.URL), store)
	if err := sess.Login(context.Background(), "x@y.z", "bad"); err == nil {
		t.Fatalf("expected login error")
	}
	if _, err := sess.Token(); err == nil {
		t.Fatalf("session should stay logged out")
	}
}

func TestSession_Register_FillsSession(t *testing.T) {
	ts := authServer(t)
	defer ts.Close()

	sess := New(api.New(ts.URL), &memStore{})
	if err := sess.Register(context.Background(), "alice", "alice@example.com", "secret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if sess.Current() == nil || sess.Current().Email != "alice@example.com" {
		t.Fatalf("profile after register: %+v", sess.Current())
	}
}
