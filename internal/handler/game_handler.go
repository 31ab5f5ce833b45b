package handler

import (
	"net/http"
	"strconv"
	"time"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type GameHandler struct {
	uc *usecase.GameUsecase
}

// DI
func NewGameHandler(uc *usecase.GameUsecase) *GameHandler {
	return &GameHandler{uc: uc}
}

type gameWriteRequest struct {
	RoomID     int64     `json:"roomId"`
	NumPlayers int       `json:"numPlayers"`
	NumTurns   int       `json:"numTurns"`
	Seconds    int       `json:"seconds"`
	WinnerID   string    `json:"winnerId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type participationWriteRequest struct {
	GameID int64  `json:"gameId"`
	UserID string `json:"userId"`
	DeckID *int64 `json:"deckId"`
}

// /api/game と /api/gameparticipation を登録
func (h *GameHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/game")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.create)
	g.GET("", h.list)
	g.DELETE("/:id", h.remove)

	p := e.Group("/api/gameparticipation")
	p.Use(middleware.AuthJWT(cfg))

	p.POST("", h.createParticipation)
}

func (h *GameHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req gameWriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), userID, usecase.GameWriteInput{
		RoomID:     req.RoomID,
		NumPlayers: req.NumPlayers,
		NumTurns:   req.NumTurns,
		Seconds:    req.Seconds,
		WinnerID:   req.WinnerID,
		CreatedAt:  req.CreatedAt,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *GameHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *GameHandler) remove(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), userID, id); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *GameHandler) createParticipation(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req participationWriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.UserID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "userId is required"})
	}

	out, err := h.uc.CreateParticipation(c.Request().Context(), userID, usecase.ParticipationWriteInput{
		GameID: req.GameID,
		UserID: req.UserID,
		DeckID: req.DeckID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
