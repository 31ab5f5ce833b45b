package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type StatsHandler struct {
	uc *usecase.StatsUsecase
}

// DI
func NewStatsHandler(uc *usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// /api/stats を登録
func (h *StatsHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/stats")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.get)
}

// ダッシュボード用の自分の集計
func (h *StatsHandler) get(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.GetForUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
