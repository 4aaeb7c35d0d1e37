package api

import (
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recipefy/backend/internal/metrics"
	"github.com/recipefy/backend/internal/quantity"
	"github.com/recipefy/backend/internal/service"
	"github.com/recipefy/backend/internal/types"
)

// QuantityHandler exposes the amount engine directly. Its routes need no
// authentication.
type QuantityHandler struct {
	metrics service.QuantityRecorder
}

func NewQuantityHandler(recorder service.QuantityRecorder) *QuantityHandler {
	return &QuantityHandler{metrics: recorder}
}

func (h *QuantityHandler) RegisterRoutes(router *gin.RouterGroup) {
	q := router.Group("/quantity")
	{
		q.POST("/parse", h.Parse)
		q.POST("/scale", h.Scale)
		q.POST("/convert", h.Convert)
		q.POST("/aggregate", h.Aggregate)
	}
}

func (h *QuantityHandler) record(operation, raw string) {
	if h.metrics == nil {
		return
	}
	if _, ok := quantity.ParseAmount(raw); ok {
		h.metrics.QuantityOperation(operation, metrics.OutcomeParsed)
	} else {
		h.metrics.QuantityOperation(operation, metrics.OutcomeOpaque)
	}
}

func (h *QuantityHandler) Parse(c *gin.Context) {
	var req types.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := make([]types.ParseResult, 0, len(req.Amounts))
	for _, raw := range req.Amounts {
		h.record("parse", raw)
		result := types.ParseResult{Raw: raw}
		if q, ok := quantity.ParseAmount(raw); ok {
			result.Quantity = &q
			if unit, ok := quantity.NormalizeUnit(q.Unit); ok {
				result.Unit = string(unit)
			}
		}
		results = append(results, result)
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *QuantityHandler) Scale(c *gin.Context) {
	var req types.ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !positive(req.TargetServings) || !positive(req.BaseServings) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_servings and base_servings must be positive"})
		return
	}

	resp := types.AmountsResponse{Results: make([]types.AmountResult, 0, len(req.Amounts))}
	for _, raw := range req.Amounts {
		h.record("scale", raw)
		resp.Results = append(resp.Results, types.AmountResult{
			Raw:    raw,
			Result: quantity.ScaleAmount(raw, req.TargetServings, req.BaseServings),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *QuantityHandler) Convert(c *gin.Context) {
	var req types.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	system, ok := quantity.ParseSystem(req.Target)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target must be metric or us"})
		return
	}

	resp := types.AmountsResponse{Results: make([]types.AmountResult, 0, len(req.Amounts))}
	for _, raw := range req.Amounts {
		h.record("convert", raw)
		resp.Results = append(resp.Results, types.AmountResult{
			Raw:    raw,
			Result: quantity.ConvertAmount(raw, system),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *QuantityHandler) Aggregate(c *gin.Context) {
	var req types.AggregateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var system quantity.System
	if units := strings.ToLower(strings.TrimSpace(req.Units)); units != "" && units != service.UnitsOriginal {
		var ok bool
		if system, ok = quantity.ParseSystem(units); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "units must be metric, us or original"})
			return
		}
	}

	groups := quantity.Aggregate(req.Lines)
	for i := range groups {
		outcome := metrics.OutcomeParsed
		if groups[i].Mismatch {
			outcome = metrics.OutcomeMismatch
		}
		if h.metrics != nil {
			h.metrics.QuantityOperation("aggregate", outcome)
		}
		if system != "" {
			groups[i].DisplayAmount = quantity.ConvertAmount(groups[i].DisplayAmount, system)
		}
	}
	c.JSON(http.StatusOK, gin.H{"items": groups})
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
