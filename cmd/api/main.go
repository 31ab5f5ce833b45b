package main

import (
	"context"
	"os"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	//ローカル開発用。.envが無くても構わない
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.FriendRequest{},
		&model.RefreshToken{},
		&model.Deck{},
		&model.Room{},
		&model.Game{},
		&model.GameParticipation{},
	); err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	friendRequestRepo := infraRepo.NewFriendRequestGormRepository(gormDB)
	refreshTokenRepo := infraRepo.NewRefreshTokenGormRepository(gormDB)
	deckRepo := infraRepo.NewDeckGormRepository(gormDB)
	roomRepo := infraRepo.NewRoomGormRepository(gormDB)
	gameRepo := infraRepo.NewGameGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	authValidator := validator.NewAuthValidator(userRepo)
	tokenUC := usecase.NewTokenUsecase(cfg, userRepo, refreshTokenRepo, txManager)
	authUC := usecase.NewAuthUsecase(userRepo, tokenUC, authValidator)
	friendUC := usecase.NewFriendUsecase(userRepo, friendRequestRepo, txManager)
	friendRequestUC := usecase.NewFriendRequestUsecase(userRepo, friendRequestRepo)
	deckUC := usecase.NewDeckUsecase(deckRepo, userRepo)
	roomUC := usecase.NewRoomUsecase(roomRepo, userRepo, txManager)
	gameUC := usecase.NewGameUsecase(gameRepo, roomRepo, userRepo, deckRepo, txManager)
	statsUC := usecase.NewStatsUsecase(gameRepo)

	//Handler生成とルーティング
	e := server.New(cfg, logger)
	server.RegisterRoutes(e, cfg, server.Handlers{
		Auth:          handler.NewAuthHandler(authUC, cfg),
		Friend:        handler.NewFriendHandler(friendUC),
		FriendRequest: handler.NewFriendRequestHandler(friendRequestUC),
		Deck:          handler.NewDeckHandler(deckUC),
		Room:          handler.NewRoomHandler(roomUC),
		Game:          handler.NewGameHandler(gameUC),
		Stats:         handler.NewStatsHandler(statsUC),
	})

	logger.Info().Str("port", cfg.Port).Msg("starting api server")

	if err := server.Start(e, cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
