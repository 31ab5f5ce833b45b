package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/friend のHTTP
type FriendHandler struct {
	uc *usecase.FriendUsecase
}

// DI
func NewFriendHandler(uc *usecase.FriendUsecase) *FriendHandler {
	return &FriendHandler{uc: uc}
}

type addFriendRequest struct {
	FriendID string `json:"friendId"`
}

// /api/friend, /api/friend/{id} を登録
func (h *FriendHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/friend")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.list)
	g.POST("", h.add)
	g.DELETE("/:id", h.remove)
}

// 自分の友達一覧
func (h *FriendHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListFriends(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// 受信済みリクエストの承認＝友達追加
func (h *FriendHandler) add(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req addFriendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.FriendID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "friendId is required"})
	}

	if err := h.uc.AddFriend(c.Request().Context(), userID, req.FriendID); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *FriendHandler) remove(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	friendID := c.Param("id")
	if friendID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.RemoveFriend(c.Request().Context(), userID, friendID); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
