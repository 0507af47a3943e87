package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ItemKeeper/internal/config"
	"ItemKeeper/internal/handlers"
	"ItemKeeper/internal/middleware"
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/repo"
	"ItemKeeper/internal/service"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) ListByUser(ctx context.Context, userID int64) ([]model.Item, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *mockItemRepo) UpdateContent(ctx context.Context, id, title, description string) error {
	return m.Called(ctx, id, title, description).Error(0)
}

func (m *mockItemRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

// --- Helpers ---
const testSecret = "test-secret"

func newTestRouter(t *testing.T, ur repo.UserRepository, ir repo.ItemRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret, TokenTTL: time.Hour}
	logger := zap.NewNop().Sugar()

	if ur == nil {
		ur = &mockUserRepo{}
	}
	if ir == nil {
		ir = &mockItemRepo{}
	}
	userSvc := service.NewUserService(ur)
	itemSvc := service.NewItemService(ir)

	h := handlers.NewHandler(userSvc, itemSvc, logger, cfg)
	return h.Router
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64) {
	t.Helper()
	rr := httptest.NewRecorder()
	_, _ = middleware.SetLoginCookie(rr, userID, testSecret, time.Hour)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
