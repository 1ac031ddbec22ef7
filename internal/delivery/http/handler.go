package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pantrylist/backend/internal/domain"
	"github.com/pantrylist/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog    *usecase.CatalogService
	categories *usecase.CategoryService
	voice      *usecase.VoiceService
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog *usecase.CatalogService, categories *usecase.CategoryService, voice *usecase.VoiceService) *Handler {
	return &Handler{
		catalog:    catalog,
		categories: categories,
		voice:      voice,
	}
}

type addToListRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type createCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type resolveRequest struct {
	Query      string                `json:"query"`
	Candidates []domain.CatalogEntry `json:"candidates"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pantrylist-backend",
		"version": "1.0.0",
	})
}

// SearchProducts lists the available catalog filtered by ?q=
func (h *Handler) SearchProducts(c *gin.Context) {
	products, err := h.catalog.SearchAvailable(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// CreateProduct adds a product to the catalog
func (h *Handler) CreateProduct(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product.ID = ""

	saved, err := h.catalog.SaveProduct(c.Request.Context(), &product)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// UpdateProduct replaces the product identified by :id
func (h *Handler) UpdateProduct(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product.ID = c.Param("id")

	saved, err := h.catalog.SaveProduct(c.Request.Context(), &product)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteProduct removes the product identified by :id
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetList returns the items of :list with the total cost
func (h *Handler) GetList(c *gin.Context) {
	summary, err := h.catalog.ListItems(c.Request.Context(), domain.ListType(c.Param("list")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AddToList adds a product to :list; quantity defaults to 1
func (h *Handler) AddToList(c *gin.Context) {
	var req addToListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.catalog.AddToListByID(c.Request.Context(), req.ProductID, domain.ListType(c.Param("list")), req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ClearList removes every product in :list
func (h *Handler) ClearList(c *gin.Context) {
	removed, err := h.catalog.ClearList(c.Request.Context(), domain.ListType(c.Param("list")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// ListCategories returns all known categories
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.categories.List(c.Request.Context())})
}

// CreateCategory adds a category
func (h *Handler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories, err := h.categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ResolveVoiceCommand matches a phrase against caller-supplied candidates
// without touching any list
func (h *Handler) ResolveVoiceCommand(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, usecase.ResolveVoiceCommand(req.Query, usecase.DedupeEntries(req.Candidates)))
}

// ProcessTranscript resolves a transcript and adds the match to the shopping list
func (h *Handler) ProcessTranscript(c *gin.Context) {
	var req domain.VoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.voice.ProcessTranscript(c.Request.Context(), &req)
	if err != nil {
		if outcome != nil {
			log.Printf("[VOICE] Transcript %q failed: %v", outcome.Transcript, err)
			c.JSON(http.StatusInternalServerError, outcome)
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// writeError maps domain errors onto HTTP status codes
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidList),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrUnsupportedLocale):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, domain.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
