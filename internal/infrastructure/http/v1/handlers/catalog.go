package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"invoicer/internal/core/id"
)

// CatalogService is the owner-scoped CRUD API behind a CatalogHandler.
// *domain.CatalogService[T] implements it.
type CatalogService[T any] interface {
	Create(ctx context.Context, entity T) (id.ID, error)
	GetByID(ctx context.Context, entityID id.ID) (T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, entityID id.ID) error
}

// CatalogHandler provides generic HTTP handlers for catalog entities
// (clients, products, services).
type CatalogHandler[T any, Req any, Resp any] struct {
	*BaseHandler
	service CatalogService[T]

	// apply writes a request body onto an entity (nil for a new one)
	apply func(req Req, existing T) T
	toDTO func(entity T) Resp
}

// CatalogHandlerConfig configures the catalog handler.
type CatalogHandlerConfig[T any, Req any, Resp any] struct {
	Service CatalogService[T]
	Apply   func(req Req, existing T) T
	ToDTO   func(entity T) Resp
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler[T any, Req any, Resp any](
	base *BaseHandler,
	cfg CatalogHandlerConfig[T, Req, Resp],
) *CatalogHandler[T, Req, Resp] {
	return &CatalogHandler[T, Req, Resp]{
		BaseHandler: base,
		service:     cfg.Service,
		apply:       cfg.Apply,
		toDTO:       cfg.ToDTO,
	}
}

// RegisterRoutes registers standard CRUD routes for a catalog.
func (h *CatalogHandler[T, Req, Resp]) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// List handles GET /{entity}
func (h *CatalogHandler[T, Req, Resp]) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	out := lo.Map(items, func(item T, _ int) Resp { return h.toDTO(item) })
	c.JSON(http.StatusOK, out)
}

// Get handles GET /{entity}/:id
func (h *CatalogHandler[T, Req, Resp]) Get(c *gin.Context) {
	entityID, ok := h.ParamID(c)
	if !ok {
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toDTO(entity))
}

// Create handles POST /{entity}. Responds 201 with the stored entity.
func (h *CatalogHandler[T, Req, Resp]) Create(c *gin.Context) {
	var req Req
	if !h.BindJSON(c, &req) {
		return
	}

	var zero T
	entity := h.apply(req, zero)
	if _, err := h.service.Create(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}
	h.CreatedWith(c, h.toDTO(entity))
}

// Update handles PUT /{entity}/:id - replaces every mutable field.
func (h *CatalogHandler[T, Req, Resp]) Update(c *gin.Context) {
	entityID, ok := h.ParamID(c)
	if !ok {
		return
	}
	var req Req
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	existing, err := h.service.GetByID(ctx, entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated := h.apply(req, existing)
	if err := h.service.Update(ctx, updated); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.toDTO(updated))
}

// Delete handles DELETE /{entity}/:id
func (h *CatalogHandler[T, Req, Resp]) Delete(c *gin.Context) {
	entityID, ok := h.ParamID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), entityID); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "deleted")
}
