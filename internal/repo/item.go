package repo

import (
	"context"
	"errors"
	"time"

	"ItemKeeper/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
type ItemRepository interface {
	// ListByUser возвращает все записи пользователя, свежие первыми.
	ListByUser(ctx context.Context, userID int64) ([]model.Item, error)

	// GetByID возвращает запись по ID без фильтра по владельцу.
	// Если записи нет — (nil, nil).
	GetByID(ctx context.Context, id string) (*model.Item, error)

	// Create сохраняет новую запись, присваивая ID и время создания.
	Create(ctx context.Context, item *model.Item) error

	// UpdateContent обновляет только title и description записи.
	UpdateContent(ctx context.Context, id, title, description string) error

	// Delete безвозвратно удаляет запись.
	Delete(ctx context.Context, id string) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) ListByUser(ctx context.Context, userID int64) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) UpdateContent(ctx context.Context, id, title, description string) error {
	return r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", id).
		Updates(map[string]any{"title": title, "description": description}).Error
}

func (r *itemRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Item{}, "id = ?", id).Error
}
