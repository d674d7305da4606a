package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/adanyl0v/study-board/internal/models"
	"github.com/adanyl0v/study-board/internal/repository"
)

type UserRepository struct {
	db *gorm.DB
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userRow{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func (r *UserRepository) CreateMany(ctx context.Context, users []*models.User) error {
	if len(users) == 0 {
		return nil
	}

	rows := make([]userRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, newUserRow(user))
	}

	err := r.db.WithContext(ctx).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("create users: %w", translateError(err))
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var row userRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, translateError(err)
	}
	return row.toModel(), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var row userRow
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&row).Error
	if err != nil {
		return nil, translateError(err)
	}
	return row.toModel(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	var rows []userRow
	err := r.db.WithContext(ctx).Order("username").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]*models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toModel())
	}
	return users, nil
}
