package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type deckGormRepository struct {
	db *gorm.DB
}

// GORM実装
func NewDeckGormRepository(db *gorm.DB) domainrepo.DeckRepository {
	return &deckGormRepository{db: db}
}

func (r *deckGormRepository) Create(ctx context.Context, deck *model.Deck) error {
	if err := r.db.WithContext(ctx).Create(deck).Error; err != nil {
		return err
	}
	return nil
}

func (r *deckGormRepository) FindByID(ctx context.Context, id int64) (*model.Deck, error) {
	var d model.Deck

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&d).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &d, nil
}

func (r *deckGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.Deck, error) {
	var decks []model.Deck

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&decks).Error

	if err != nil {
		return nil, err
	}

	return decks, nil
}

func (r *deckGormRepository) Update(ctx context.Context, deck *model.Deck) error {
	if err := r.db.WithContext(ctx).Save(deck).Error; err != nil {
		return err
	}
	return nil
}

func (r *deckGormRepository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Deck{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainrepo.ErrDeckNotFound
	}

	return nil
}
