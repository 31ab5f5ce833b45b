package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type DeckUsecase struct {
	decks repo.DeckRepository
	users repo.UserRepository
}

// DI
func NewDeckUsecase(decks repo.DeckRepository, users repo.UserRepository) *DeckUsecase {
	return &DeckUsecase{decks: decks, users: users}
}

type DeckWriteInput struct {
	Name      string
	Commander string
	Colors    string
}

func validateDeckInput(in DeckWriteInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if len(in.Name) > 100 {
		return NewHTTPError(http.StatusBadRequest, "name too long")
	}
	if strings.TrimSpace(in.Commander) == "" {
		return NewHTTPError(http.StatusBadRequest, "commander is required")
	}
	if len(in.Commander) > 200 {
		return NewHTTPError(http.StatusBadRequest, "commander too long")
	}
	//色は WUBRG の部分集合
	for _, c := range in.Colors {
		if !strings.ContainsRune("WUBRG", c) {
			return NewHTTPError(http.StatusBadRequest, "invalid colors")
		}
	}
	return nil
}

func (u *DeckUsecase) Create(ctx context.Context, callerID string, in DeckWriteInput) (*model.Deck, error) {
	if err := validateDeckInput(in); err != nil {
		return nil, err
	}

	deck := &model.Deck{
		UserID:    callerID,
		Name:      strings.TrimSpace(in.Name),
		Commander: strings.TrimSpace(in.Commander),
		Colors:    in.Colors,
	}

	if err := u.decks.Create(ctx, deck); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "could not create deck")
	}

	return deck, nil
}

// 自分のデッキ一覧
func (u *DeckUsecase) ListMine(ctx context.Context, callerID string) ([]model.Deck, error) {
	decks, err := u.decks.ListByUserID(ctx, callerID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return decks, nil
}

// 他ユーザーのデッキ一覧（ポッド編成で使う）
func (u *DeckUsecase) ListForUser(ctx context.Context, userID string) ([]model.Deck, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if user == nil {
		return nil, NewHTTPError(http.StatusNotFound, "user not found")
	}

	decks, err := u.decks.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return decks, nil
}

// 更新は所有者のみ。他人のデッキは存在しない扱い
func (u *DeckUsecase) Update(ctx context.Context, callerID string, deckID int64, in DeckWriteInput) (*model.Deck, error) {
	if err := validateDeckInput(in); err != nil {
		return nil, err
	}

	deck, err := u.decks.FindByID(ctx, deckID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if deck == nil || deck.UserID != callerID {
		return nil, NewHTTPError(http.StatusNotFound, "deck not found")
	}

	deck.Name = strings.TrimSpace(in.Name)
	deck.Commander = strings.TrimSpace(in.Commander)
	deck.Colors = in.Colors

	if err := u.decks.Update(ctx, deck); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "could not update deck")
	}

	return deck, nil
}

func (u *DeckUsecase) Delete(ctx context.Context, callerID string, deckID int64) error {
	deck, err := u.decks.FindByID(ctx, deckID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if deck == nil || deck.UserID != callerID {
		return NewHTTPError(http.StatusNotFound, "deck not found")
	}

	if err := u.decks.DeleteByID(ctx, deck.ID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "could not delete deck")
	}

	return nil
}
