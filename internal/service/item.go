package service

import (
	"context"
	"errors"
	"fmt"

	"ItemKeeper/internal/model"
	"ItemKeeper/internal/repo"
)

var (
	// ErrItemNotFound возвращается, когда записи с указанным ID нет.
	ErrItemNotFound = errors.New("item not found")
	// ErrNotOwner возвращается, когда запись принадлежит другому пользователю.
	ErrNotOwner = errors.New("not the item owner")
)

// ItemService инкапсулирует бизнес-логику работы с Item:
// выборки в рамках владельца и проверку владения при изменении/удалении.
type ItemService struct {
	repo repo.ItemRepository
}

func NewItemService(r repo.ItemRepository) *ItemService {
	return &ItemService{repo: r}
}

// List возвращает все записи пользователя, свежие первыми.
func (s *ItemService) List(ctx context.Context, userID int64) ([]model.Item, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Create сохраняет новую запись от имени userID.
// Поля принимаются как есть: пустые title/description допустимы.
func (s *ItemService) Create(ctx context.Context, userID int64, title, description string) (*model.Item, error) {
	item := &model.Item{
		UserID:      userID,
		Title:       title,
		Description: description,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// Update меняет title/description записи после проверки владения.
// ID, владелец и время создания остаются нетронутыми.
func (s *ItemService) Update(ctx context.Context, userID int64, id, title, description string) (*model.Item, error) {
	item, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateContent(ctx, id, title, description); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	item.Title = title
	item.Description = description
	return item, nil
}

// Delete безвозвратно удаляет запись после проверки владения.
// Повторный вызов для того же ID вернёт ErrItemNotFound.
func (s *ItemService) Delete(ctx context.Context, userID int64, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// getOwned ищет запись и сверяет владельца с запрашивающим.
func (s *ItemService) getOwned(ctx context.Context, userID int64, id string) (*model.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if item.UserID != userID {
		return nil, ErrNotOwner
	}
	return item, nil
}
