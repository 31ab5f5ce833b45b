package usecase

import (
	"context"
	"net/http"

	repo "app/internal/repository"
)

type StatsUsecase struct {
	games repo.GameRepository
}

// DI
func NewStatsUsecase(games repo.GameRepository) *StatsUsecase {
	return &StatsUsecase{games: games}
}

type DeckStatsDTO struct {
	DeckID    int64  `json:"deckId"`
	Name      string `json:"name"`
	Commander string `json:"commander"`
	Games     int64  `json:"games"`
	Wins      int64  `json:"wins"`
}

type StatsDTO struct {
	GamesPlayed  int64          `json:"gamesPlayed"`
	GamesWon     int64          `json:"gamesWon"`
	WinRate      float64        `json:"winRate"`
	TotalSeconds int64          `json:"totalSeconds"`
	Decks        []DeckStatsDTO `json:"decks"`
}

// ダッシュボード用の集計
func (u *StatsUsecase) GetForUser(ctx context.Context, userID string) (*StatsDTO, error) {
	played, err := u.games.CountGamesByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	won, err := u.games.CountWinsByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	seconds, err := u.games.SumSecondsByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	rows, err := u.games.DeckStatsByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	decks := make([]DeckStatsDTO, 0, len(rows))
	for _, row := range rows {
		decks = append(decks, DeckStatsDTO{
			DeckID:    row.DeckID,
			Name:      row.Name,
			Commander: row.Commander,
			Games:     row.Games,
			Wins:      row.Wins,
		})
	}

	var winRate float64
	if played > 0 {
		winRate = float64(won) / float64(played)
	}

	return &StatsDTO{
		GamesPlayed:  played,
		GamesWon:     won,
		WinRate:      winRate,
		TotalSeconds: seconds,
		Decks:        decks,
	}, nil
}
