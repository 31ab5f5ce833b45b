package repository

import "context"

// トランザクション内で使うリポジトリ一式
type TxRepos interface {
	Users() UserRepository
	FriendRequests() FriendRequestRepository
	RefreshTokens() RefreshTokenRepository
	Rooms() RoomRepository
	Games() GameRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
