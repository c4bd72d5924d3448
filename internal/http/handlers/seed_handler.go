package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aliiaycicek/My-Portfolio/internal/dto"
	"github.com/aliiaycicek/My-Portfolio/internal/http/handlers/common"
	"github.com/aliiaycicek/My-Portfolio/internal/http/middleware"
	"github.com/aliiaycicek/My-Portfolio/internal/logger"
	"github.com/aliiaycicek/My-Portfolio/internal/service"
)

// Seeder загружает документ с начальными данными.
type Seeder interface {
	Seed(ctx context.Context, doc *service.SeedDocument) (dto.SeedResponse, error)
}

// SeedHandler обрабатывает запросы на загрузку начальных данных.
type SeedHandler struct {
	seeder   Seeder
	seedPath string
}

// NewSeedHandler создаёт новый seed handler. Пустой seedPath означает встроенные данные.
func NewSeedHandler(seeder Seeder, seedPath string) *SeedHandler {
	return &SeedHandler{seeder: seeder, seedPath: seedPath}
}

// Seed загружает начальные данные в пустые коллекции.
// POST /api/seed
func (h *SeedHandler) Seed(c *gin.Context) {
	doc, err := service.LoadSeedFile(h.seedPath)
	if err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.seeder.Seed(c.Request.Context(), doc)
	if err != nil {
		logger.L().WithFields(logrus.Fields{
			"path":       h.seedPath,
			"request_id": c.GetString(middleware.ContextRequestIDKey),
		}).WithError(err).Error("seed: не удалось загрузить начальные данные")
		common.RespondInternalError(c, "не удалось загрузить начальные данные")
		return
	}

	c.JSON(http.StatusOK, result)
}
