package model

// GameParticipationは1ゲーム内の1プレイヤー分の記録。
type GameParticipation struct {
	ID     int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	GameID int64  `json:"gameId" gorm:"not null;index;uniqueIndex:idx_game_user"`
	UserID string `json:"userId" gorm:"type:uuid;not null;index;uniqueIndex:idx_game_user"`
	DeckID *int64 `json:"deckId" gorm:"index"`
	Won    bool   `json:"won" gorm:"not null;default:false"`
}
