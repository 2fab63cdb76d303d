package handler

import (
	"net/http"
	"time"

	"app/internal/infra/db"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// 死活とDB疎通。DBが落ちていても500を返すだけで、プロセスは動き続ける。
type HealthHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewHealthHandler(gormDB *gorm.DB, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{db: gormDB, log: log}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/health", h.check)
}

func (h *HealthHandler) check(c echo.Context) error {
	if err := db.Ping(c.Request().Context(), h.db); err != nil {
		h.log.Error().Err(err).Msg("health check: database unreachable")
		return c.JSON(http.StatusInternalServerError, HealthResponse{
			Status:    "Error",
			Database:  "Disconnected",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Database:  "Connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
