package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

// GORM実装
// main.goでこれをnewしてusecaseに注入します。
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

// Create はユーザーを新規作成
func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}
	return nil
}

// IDでユーザーを1件取得。無ければ nil, nil
func (r *userGormRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

// emailでユーザーを1件取得
func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

// user_nameでユーザーを1件取得
func (r *userGormRepository) FindByUserName(ctx context.Context, userName string) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("user_name = ?", userName).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

// ユーザーを更新。
func (r *userGormRepository) Update(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return err
	}
	return nil
}

// 友達セットをeager loadして返す
func (r *userGormRepository) ListFriends(ctx context.Context, userID string) ([]model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Preload("Friends").
		Where("id = ?", userID).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrUserNotFound
		}
		return nil, err
	}

	friends := make([]model.User, 0, len(u.Friends))
	for _, f := range u.Friends {
		friends = append(friends, *f)
	}
	return friends, nil
}

// join tableを直接数えて友達かどうかを判定
func (r *userGormRepository) IsFriend(ctx context.Context, userID string, friendID string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Table("user_friends").
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// 双方向のエッジを書く。呼び出し側がTxで囲む
func (r *userGormRepository) AddFriend(ctx context.Context, user *model.User, friend *model.User) error {
	if err := r.db.WithContext(ctx).Model(user).Association("Friends").Append(friend); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Model(friend).Association("Friends").Append(user); err != nil {
		return err
	}
	return nil
}

// 双方向のエッジを消す。呼び出し側がTxで囲む
func (r *userGormRepository) RemoveFriend(ctx context.Context, user *model.User, friend *model.User) error {
	if err := r.db.WithContext(ctx).Model(user).Association("Friends").Delete(friend); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Model(friend).Association("Friends").Delete(user); err != nil {
		return err
	}
	return nil
}
