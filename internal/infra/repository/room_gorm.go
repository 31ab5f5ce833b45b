package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type roomGormRepository struct {
	db *gorm.DB
}

// GORM実装
func NewRoomGormRepository(db *gorm.DB) domainrepo.RoomRepository {
	return &roomGormRepository{db: db}
}

func (r *roomGormRepository) Create(ctx context.Context, room *model.Room) error {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		return err
	}
	return nil
}

func (r *roomGormRepository) FindByID(ctx context.Context, id int64) (*model.Room, error) {
	var room model.Room

	err := r.db.WithContext(ctx).
		Preload("Players").
		Where("id = ?", id).
		First(&room).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &room, nil
}

// codeで1件。Playersをpreload
func (r *roomGormRepository) FindByCode(ctx context.Context, code string) (*model.Room, error) {
	var room model.Room

	err := r.db.WithContext(ctx).
		Preload("Players").
		Where("code = ?", code).
		First(&room).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &room, nil
}

func (r *roomGormRepository) AddPlayer(ctx context.Context, room *model.Room, player *model.User) error {
	if err := r.db.WithContext(ctx).Model(room).Association("Players").Append(player); err != nil {
		return err
	}
	return nil
}

func (r *roomGormRepository) RemovePlayer(ctx context.Context, room *model.Room, player *model.User) error {
	if err := r.db.WithContext(ctx).Model(room).Association("Players").Delete(player); err != nil {
		return err
	}
	return nil
}

func (r *roomGormRepository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Room{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainrepo.ErrRoomNotFound
	}

	return nil
}
