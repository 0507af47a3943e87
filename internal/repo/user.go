package repo

import (
	"context"
	"errors"

	"ItemKeeper/internal/model"

	"gorm.io/gorm"
)

// UserRepository определяет контракт доступа к User для слоя сервиса.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает запись с присвоенным ID.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByEmail возвращает пользователя по email. Если не найден — (nil, nil).
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// GetUserByID возвращает пользователя по ID. Если не найден — (nil, nil).
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
