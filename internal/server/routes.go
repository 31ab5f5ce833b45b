package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

// Handlers はAPIのハンドラ一式
type Handlers struct {
	Auth          *handler.AuthHandler
	Friend        *handler.FriendHandler
	FriendRequest *handler.FriendRequestHandler
	Deck          *handler.DeckHandler
	Room          *handler.RoomHandler
	Game          *handler.GameHandler
	Stats         *handler.StatsHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Auth.RegisterRoutes(e)
	h.Friend.RegisterRoutes(e, cfg)
	h.FriendRequest.RegisterRoutes(e, cfg)
	h.Deck.RegisterRoutes(e, cfg)
	h.Room.RegisterRoutes(e, cfg)
	h.Game.RegisterRoutes(e, cfg)
	h.Stats.RegisterRoutes(e, cfg)
}
