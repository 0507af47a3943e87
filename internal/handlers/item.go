package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ItemKeeper/internal/config"
	"ItemKeeper/internal/middleware"
	"ItemKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler обрабатывает CRUD-операции над записями пользователя.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// ItemRequest — тело create/update. Поля принимаются как есть.
type ItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// List отдаёт все записи пользователя, свежие первыми.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.ItemService.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List: service error", "user_id", userID, "error", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Create сохраняет новую запись от имени пользователя из токена.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	item, err := h.ItemService.Create(r.Context(), userID, req.Title, req.Description)
	if err != nil {
		h.Logger.Errorw("Create: service error", "user_id", userID, "error", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Update меняет title/description записи; не владелец получает 401.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	item, err := h.ItemService.Update(r.Context(), userID, id, req.Title, req.Description)
	if err != nil {
		h.writeItemError(w, "Update", userID, id, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete безвозвратно удаляет запись; не владелец получает 401.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.ItemService.Delete(r.Context(), userID, id); err != nil {
		h.writeItemError(w, "Delete", userID, id, err)
		return
	}

	writeMessage(w, http.StatusOK, "Item removed")
}

// writeItemError маппит ошибки сервиса в HTTP-ответы.
// Несовпадение владельца отдаётся как 401 "Not authorized" — клиенты
// завязаны на этот статус, менять на 403 нельзя.
func (h *ItemHandler) writeItemError(w http.ResponseWriter, op string, userID int64, id string, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		writeMessage(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, service.ErrNotOwner):
		writeMessage(w, http.StatusUnauthorized, "Not authorized")
	default:
		h.Logger.Errorw(op+": service error", "user_id", userID, "item_id", id, "error", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
	}
}
