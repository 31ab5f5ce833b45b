package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type friendRequestGormRepository struct {
	db *gorm.DB
}

// GORM実装
func NewFriendRequestGormRepository(db *gorm.DB) domainrepo.FriendRequestRepository {
	return &friendRequestGormRepository{db: db}
}

func (r *friendRequestGormRepository) Create(ctx context.Context, request *model.FriendRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return err
	}
	return nil
}

func (r *friendRequestGormRepository) FindByID(ctx context.Context, id int64) (*model.FriendRequest, error) {
	var fr model.FriendRequest

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&fr).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &fr, nil
}

// 順序付きペアでpendingを1件検索。無ければ nil, nil
func (r *friendRequestGormRepository) FindPending(ctx context.Context, senderID string, receiverID string) (*model.FriendRequest, error) {
	var fr model.FriendRequest

	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).
		First(&fr).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &fr, nil
}

// 送信分を新しい順で
func (r *friendRequestGormRepository) ListSent(ctx context.Context, userID string) ([]model.FriendRequest, error) {
	var requests []model.FriendRequest

	err := r.db.WithContext(ctx).
		Preload("Receiver").
		Where("sender_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error

	if err != nil {
		return nil, err
	}

	return requests, nil
}

// 受信分を新しい順で
func (r *friendRequestGormRepository) ListReceived(ctx context.Context, userID string) ([]model.FriendRequest, error) {
	var requests []model.FriendRequest

	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("receiver_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error

	if err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *friendRequestGormRepository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FriendRequest{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainrepo.ErrFriendRequestNotFound
	}

	return nil
}

// userが送信者または受信者のリクエストを全削除
func (r *friendRequestGormRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Delete(&model.FriendRequest{}).Error; err != nil {
		return err
	}
	return nil
}
