package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ItemKeeper/internal/config"
	"ItemKeeper/internal/middleware"
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/service"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию и вход пользователей.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер users
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse — ответ login/register: токен и профиль пользователя.
// Токен дублируется в auth cookie для браузерного клиента.
type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Register регистрация пользователя. Успех сразу аутентифицирует.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeMessage(w, http.StatusConflict, "User already exists")
			return
		}
		h.Logger.Errorw("Register: service error", "email", req.Email, "error", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	h.respondWithAuth(w, user)
}

// Login вход по email и паролю.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Logger.Errorw("Login: service error", "email", req.Email, "error", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	h.respondWithAuth(w, user)
}

// Me возвращает профиль текущего пользователя по токену.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("Me: service error", "user_id", userID, "error", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		// токен валиден, но пользователя уже нет
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// respondWithAuth ставит auth cookie и отдаёт токен с профилем.
func (h *UserHandler) respondWithAuth(w http.ResponseWriter, user *model.User) {
	token, err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret, h.Config.TokenTTL)
	if err != nil {
		h.Logger.Errorw("failed to issue token", "user_id", user.ID, "error", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: user})
}
