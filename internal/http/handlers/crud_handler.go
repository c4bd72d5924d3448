package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aliiaycicek/My-Portfolio/internal/http/handlers/common"
	"github.com/aliiaycicek/My-Portfolio/internal/http/middleware"
	"github.com/aliiaycicek/My-Portfolio/internal/logger"
	"github.com/aliiaycicek/My-Portfolio/internal/mapper"
	"github.com/aliiaycicek/My-Portfolio/internal/models"
	"github.com/aliiaycicek/My-Portfolio/internal/repository"
)

// Repository - операции репозитория, которые нужны CRUD хэндлеру.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	Add(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, entity T) (T, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// EventPublisher рассылает уведомления об изменениях.
type EventPublisher interface {
	Publish(event string, data any) error
}

// CRUDHandler обслуживает одну коллекцию портфолио.
type CRUDHandler[T any, PT models.Record[T], D any] struct {
	kind      string
	repo      Repository[T]
	profile   mapper.Profile[T, D]
	publisher EventPublisher
}

// NewCRUDHandler создаёт хэндлер для коллекции kind. publisher может быть nil.
func NewCRUDHandler[T any, PT models.Record[T], D any](
	kind string,
	repo Repository[T],
	profile mapper.Profile[T, D],
	publisher EventPublisher,
) *CRUDHandler[T, PT, D] {
	return &CRUDHandler[T, PT, D]{
		kind:      kind,
		repo:      repo,
		profile:   profile,
		publisher: publisher,
	}
}

// Kind возвращает имя коллекции.
func (h *CRUDHandler[T, PT, D]) Kind() string {
	return h.kind
}

// Register вешает маршруты коллекции на группу. Маршруты с :id проходят через idMiddleware,
// запросы на запись дополнительно через writeMiddleware.
func (h *CRUDHandler[T, PT, D]) Register(group *gin.RouterGroup, idMiddleware, writeMiddleware []gin.HandlerFunc) {
	withID := func(extra []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
		chain := append([]gin.HandlerFunc{}, idMiddleware...)
		chain = append(chain, extra...)
		return append(chain, handler)
	}
	write := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeMiddleware...), handler)
	}

	group.GET("", h.List)
	group.GET("/:id", withID(nil, h.Get)...)
	group.POST("", write(h.Create)...)
	group.PUT("/:id", withID(writeMiddleware, h.Update)...)
	group.DELETE("/:id", withID(writeMiddleware, h.Delete)...)
}

// List возвращает все активные записи.
// GET /api/{kind}
func (h *CRUDHandler[T, PT, D]) List(c *gin.Context) {
	records, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, h.profile.ToDTOs(records))
}

// Get возвращает запись по id.
// GET /api/{kind}/:id
func (h *CRUDHandler[T, PT, D]) Get(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	record, err := h.repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		common.RespondNotFound(c, "")
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, h.profile.ToDTO(record))
}

// Create добавляет запись. Идентификатор из тела запроса игнорируется.
// POST /api/{kind}
func (h *CRUDHandler[T, PT, D]) Create(c *gin.Context) {
	var req D
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	entity := h.profile.ToEntity(req)
	PT(&entity).SetID(0)

	created, err := h.repo.Add(c.Request.Context(), entity)
	if err != nil {
		_ = c.Error(err)
		return
	}

	id := PT(&created).GetID()
	h.publish(c, "created", id)

	location := strings.TrimSuffix(c.Request.URL.Path, "/") + "/" + strconv.FormatInt(id, 10)
	c.Header("Location", location)
	c.JSON(http.StatusCreated, h.profile.ToDTO(created))
}

// Update полностью перезаписывает существующую запись.
// PUT /api/{kind}/:id
func (h *CRUDHandler[T, PT, D]) Update(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req D
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	exists, err := h.repo.Exists(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !exists {
		common.RespondNotFound(c, "")
		return
	}

	entity := h.profile.ToEntity(req)
	// id из пути важнее id из тела
	PT(&entity).SetID(id)

	updated, err := h.repo.Update(ctx, entity)
	if errors.Is(err, repository.ErrNotFound) {
		common.RespondNotFound(c, "")
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.publish(c, "updated", id)
	c.JSON(http.StatusOK, h.profile.ToDTO(updated))
}

// Delete мягко удаляет запись.
// DELETE /api/{kind}/:id
func (h *CRUDHandler[T, PT, D]) Delete(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	exists, err := h.repo.Exists(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !exists {
		common.RespondNotFound(c, "")
		return
	}

	deleted, err := h.repo.Delete(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !deleted {
		common.RespondNotFound(c, "")
		return
	}

	h.publish(c, "deleted", id)
	c.Status(http.StatusNoContent)
}

func (h *CRUDHandler[T, PT, D]) publish(c *gin.Context, action string, id int64) {
	if h.publisher == nil {
		return
	}

	event := h.kind + "." + action
	if err := h.publisher.Publish(event, gin.H{"id": id}); err != nil {
		logger.L().WithFields(logrus.Fields{
			"event":      event,
			"id":         id,
			"request_id": c.GetString(middleware.ContextRequestIDKey),
		}).WithError(err).Warn("не удалось отправить уведомление")
	}
}
