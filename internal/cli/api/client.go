package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// User — профиль пользователя, как его отдаёт сервер.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Item — запись пользователя, как её отдаёт сервер.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthResponse — ответ login/register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Error — ошибка уровня API: HTTP-статус и сообщение сервера (если было).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Client — HTTP-клиент JSON API сервера.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New создаёт клиент для указанного базового URL сервера.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
	}
}

// Login обменивает учётные данные на токен и профиль.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/user/login", "",
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register регистрирует пользователя; успех сразу аутентифицирует.
func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/user/register", "",
		map[string]string{"username": username, "email": email, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListItems возвращает все записи пользователя, свежие первыми.
func (c *Client) ListItems(ctx context.Context, token string) ([]Item, error) {
	var items []Item
	if err := c.do(ctx, http.MethodGet, "/api/items", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem сохраняет новую запись.
func (c *Client) CreateItem(ctx context.Context, token, title, description string) (*Item, error) {
	var it Item
	err := c.do(ctx, http.MethodPost, "/api/items", token,
		map[string]string{"title": title, "description": description}, &it)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// UpdateItem меняет title/description записи.
func (c *Client) UpdateItem(ctx context.Context, token, id, title, description string) (*Item, error) {
	var it Item
	err := c.do(ctx, http.MethodPut, "/api/items/"+id, token,
		map[string]string{"title": title, "description": description}, &it)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// DeleteItem безвозвратно удаляет запись.
func (c *Client) DeleteItem(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/items/"+id, token, nil, nil)
}

// do выполняет запрос и декодирует ответ. Если token непустой,
// он передаётся как auth cookie.
func (c *Client) do(ctx context.Context, method, path, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Cookie", "auth_token="+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return apiError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError достаёт {"message"} из тела ошибки, иначе использует сырой текст.
func apiError(status int, raw []byte) *Error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return &Error{Status: status, Message: body.Message}
	}
	return &Error{Status: status, Message: strings.TrimSpace(string(raw))}
}
