package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipefy/backend/internal/middleware"
	"github.com/recipefy/backend/internal/service"
	"github.com/recipefy/backend/internal/types"
)

type CollectionHandler struct {
	collections service.ICollectionService
	syncLimits  *middleware.RateLimiter
}

func NewCollectionHandler(collections service.ICollectionService, syncLimits *middleware.RateLimiter) *CollectionHandler {
	return &CollectionHandler{collections: collections, syncLimits: syncLimits}
}

func (h *CollectionHandler) RegisterRoutes(router *gin.RouterGroup) {
	collections := router.Group("/collections")
	{
		collections.GET("", h.List)
		collections.PUT("", append(limit(h.syncLimits), h.Replace)...)
	}
}

func (h *CollectionHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	collections, err := h.collections.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, collections)
}

func (h *CollectionHandler) Replace(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.CollectionsSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collections, err := h.collections.Replace(c.Request.Context(), userID, req.Collections)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, collections)
}
