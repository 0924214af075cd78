// Package api exposes the estimator over HTTP: the conversational assist
// endpoint, a standalone rerank endpoint, and catalog item lookups.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sitecrew/estimator/internal/assistant"
	"github.com/sitecrew/estimator/internal/catalog"
	"github.com/sitecrew/estimator/internal/logging"
	"github.com/sitecrew/estimator/internal/rank"
	"github.com/sitecrew/estimator/internal/telemetry"
)

// Handler handles HTTP requests for the estimator API.
type Handler struct {
	assistant *assistant.Assistant
	reranker  *rank.Reranker
	catalog   catalog.Catalog
	telemetry *telemetry.Provider
	logger    logging.Logger
}

// NewHandler creates a new API handler.
func NewHandler(
	assistantInstance *assistant.Assistant,
	reranker *rank.Reranker,
	cat catalog.Catalog,
	tel *telemetry.Provider,
	logger logging.Logger,
) *Handler {
	return &Handler{
		assistant: assistantInstance,
		reranker:  reranker,
		catalog:   cat,
		telemetry: tel,
		logger:    logger,
	}
}

// Assist handles POST /api/v1/assist.
func (h *Handler) Assist(c *gin.Context) {
	var req assistant.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assist request", logging.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, span := h.telemetry.StartSpan(c.Request.Context(), "assist")
	defer span.End()

	resp := h.assistant.ClassifyAndSearch(ctx, req)

	h.telemetry.RecordQuery(resp.Status)
	switch resp.Status {
	case assistant.StatusNeedElement:
		h.telemetry.RecordClarification("element")
	case assistant.StatusNeedSubtype:
		h.telemetry.RecordClarification("subtype")
	case assistant.StatusNeedStage:
		h.telemetry.RecordClarification("work_stage")
	case assistant.StatusNeedQuantity:
		h.telemetry.RecordClarification("quantity")
	case assistant.StatusCalculated:
		h.telemetry.RecordEstimate()
	}
	if resp.DataSourceMissing {
		h.telemetry.RecordCatalogError()
	}

	c.JSON(http.StatusOK, resp)
}

// Rerank handles POST /api/v1/rerank. Candidates may be supplied inline;
// when omitted the full catalog is used as the pool.
func (h *Handler) Rerank(c *gin.Context) {
	var req RerankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid rerank request", logging.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, span := h.telemetry.StartSpan(c.Request.Context(), "rerank")
	defer span.End()

	pool := req.Candidates
	if pool == nil {
		items, err := h.catalog.AllItems(ctx)
		if err != nil {
			h.logger.Error("catalog unavailable for rerank", logging.Error(err))
			h.telemetry.RecordCatalogError()
			// A nil pool is reported by the reranker as data_source_missing.
			items = nil
		}
		pool = items
	}

	start := time.Now()
	out := h.reranker.Rerank(ctx, req.Query, pool, req.Filters.toRank(), rank.Options{
		TopK:          req.TopK,
		MinConfidence: req.MinConfidence,
		Unit:          req.Unit,
	})
	h.telemetry.RecordRerank(start, len(pool), len(out.Results))
	h.telemetry.RecordRelaxations(out.Relaxations)

	c.JSON(http.StatusOK, out)
}

// GetItem handles GET /api/v1/items/:code.
func (h *Handler) GetItem(c *gin.Context) {
	code := c.Param("code")

	item, err := h.catalog.LookupByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found", "code": code})
			return
		}
		h.logger.Error("item lookup failed", logging.String("code", code), logging.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// SearchItems handles GET /api/v1/items?q=substring.
func (h *Handler) SearchItems(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}

	items, err := h.catalog.SearchByDescription(c.Request.Context(), q)
	if err != nil {
		h.logger.Error("item search failed", logging.String("q", q), logging.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, ItemsResponse{Items: items, Total: len(items)})
}

// Estimate handles POST /api/v1/estimate: productivity math for a known
// item code and quantity, without the conversational flow.
func (h *Handler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.catalog.LookupByCode(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found", "code": req.Code})
			return
		}
		h.logger.Error("estimate lookup failed", logging.String("code", req.Code), logging.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}

	estimate, ok := assistant.Calculate(item, req.Quantity, req.Crews)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "item carries no productivity data", "code": req.Code,
		})
		return
	}

	h.telemetry.RecordEstimate()
	c.JSON(http.StatusOK, estimate)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ReadyCheck handles GET /ready. Ready means the catalog answers.
func (h *Handler) ReadyCheck(c *gin.Context) {
	if _, err := h.catalog.AllItems(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
