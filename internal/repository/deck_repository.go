package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrDeckNotFound = errors.New("deck not found")

type DeckRepository interface {
	Create(ctx context.Context, deck *model.Deck) error
	FindByID(ctx context.Context, id int64) (*model.Deck, error)
	ListByUserID(ctx context.Context, userID string) ([]model.Deck, error)
	Update(ctx context.Context, deck *model.Deck) error
	DeleteByID(ctx context.Context, id int64) error
}
