package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/plastpack/erp/internal/application/trade"
	"github.com/plastpack/erp/internal/domain/identity"
	"github.com/plastpack/erp/internal/interfaces/http/middleware"
)

// PurchaseHandler handles purchase invoice requests
type PurchaseHandler struct {
	BaseHandler
	purchases *trade.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(purchases *trade.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

// RegisterRoutes registers the purchase routes
func (h *PurchaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchases := rg.Group("/purchases")
	{
		purchases.GET("", h.List)
		purchases.GET("/:id", h.Get)
		purchases.POST("", h.Record)
		purchases.DELETE("/:id", middleware.RequireRole(string(identity.RoleAdmin)), h.Delete)
	}
}

// List returns non-deleted purchases, newest first
func (h *PurchaseHandler) List(c *gin.Context) {
	purchases, err := h.purchases.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, purchases)
}

// Get returns one purchase with its items
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase id")
		return
	}

	purchase, err := h.purchases.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, purchase)
}

// Record creates a purchase invoice with its items
func (h *PurchaseHandler) Record(c *gin.Context) {
	var req trade.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	purchase, err := h.purchases.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, purchase)
}

// Delete soft-deletes a purchase, admin only. Stock and cost derivations
// stop seeing it immediately.
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase id")
		return
	}

	if err := h.purchases.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// SalesHandler handles sale invoice requests
type SalesHandler struct {
	BaseHandler
	sales *trade.SalesService
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(sales *trade.SalesService) *SalesHandler {
	return &SalesHandler{sales: sales}
}

// RegisterRoutes registers the sales routes
func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.GET("", h.List)
		sales.GET("/:id", h.Get)
		sales.POST("", h.Record)
		sales.DELETE("/:id", middleware.RequireRole(string(identity.RoleAdmin)), h.Delete)
	}
}

// List returns non-deleted sales, newest first
func (h *SalesHandler) List(c *gin.Context) {
	sales, err := h.sales.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sales)
}

// Get returns one sale with its items
func (h *SalesHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale id")
		return
	}

	sale, err := h.sales.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// Record creates a sale invoice after the stock check passes for every item
func (h *SalesHandler) Record(c *gin.Context) {
	var req trade.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.sales.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sale)
}

// Delete soft-deletes a sale, admin only
func (h *SalesHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale id")
		return
	}

	if err := h.sales.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ProductionHandler handles production run requests
type ProductionHandler struct {
	BaseHandler
	production *trade.ProductionService
}

// NewProductionHandler creates a new ProductionHandler
func NewProductionHandler(production *trade.ProductionService) *ProductionHandler {
	return &ProductionHandler{production: production}
}

// RegisterRoutes registers the production routes
func (h *ProductionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	production := rg.Group("/production")
	{
		production.GET("", h.List)
		production.POST("", h.Record)
	}
}

// List returns production entries, newest first
func (h *ProductionHandler) List(c *gin.Context) {
	entries, err := h.production.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}

// Record converts preform stock into bottle stock
func (h *ProductionHandler) Record(c *gin.Context) {
	var req trade.RecordProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.production.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, entry)
}
