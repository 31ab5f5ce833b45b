package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type FriendRequestHandler struct {
	uc *usecase.FriendRequestUsecase
}

// DI
func NewFriendRequestHandler(uc *usecase.FriendRequestUsecase) *FriendRequestHandler {
	return &FriendRequestHandler{uc: uc}
}

type sendFriendRequestRequest struct {
	ReceiverID string `json:"receiverId"`
}

// /api/friendrequest 配下を登録
func (h *FriendRequestHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/friendrequest")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.send)
	g.GET("/sent", h.listSent)
	g.GET("/received", h.listReceived)
	g.DELETE("/:id", h.remove)
}

func (h *FriendRequestHandler) send(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req sendFriendRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ReceiverID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "receiverId is required"})
	}

	out, err := h.uc.Send(c.Request().Context(), userID, req.ReceiverID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *FriendRequestHandler) listSent(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListSent(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *FriendRequestHandler) listReceived(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListReceived(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// 拒否（受信者）または取り下げ（送信者）
func (h *FriendRequestHandler) remove(c echo.Context) error {
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
