package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipefy/backend/internal/middleware"
	"github.com/recipefy/backend/internal/service"
	"github.com/recipefy/backend/internal/types"
)

type ShoppingListHandler struct {
	shopping   service.IShoppingListService
	syncLimits *middleware.RateLimiter
}

func NewShoppingListHandler(shopping service.IShoppingListService, syncLimits *middleware.RateLimiter) *ShoppingListHandler {
	return &ShoppingListHandler{shopping: shopping, syncLimits: syncLimits}
}

// RegisterRoutes expects router to already authenticate requests.
func (h *ShoppingListHandler) RegisterRoutes(router *gin.RouterGroup) {
	list := router.Group("/shopping-list")
	{
		list.GET("", h.List)
		list.PUT("", append(limit(h.syncLimits), h.Replace)...)
		list.POST("/recipes/:id", h.AddRecipe)
		list.GET("/aggregate", h.Aggregate)
	}
}

func (h *ShoppingListHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.shopping.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ShoppingListHandler) Replace(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.ShoppingListSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.shopping.Replace(c.Request.Context(), userID, req.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddRecipe appends the recipe's ingredients and returns the added items.
func (h *ShoppingListHandler) AddRecipe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.shopping.AddRecipe(c.Request.Context(), userID, recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, items)
}

func (h *ShoppingListHandler) Aggregate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	groups, err := h.shopping.Aggregate(c.Request.Context(), userID, c.Query("units"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}
