package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/export"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/stock"
)

// MouvementStockHandler serves the weekly stock movement endpoints
type MouvementStockHandler struct {
	BaseHandler
	mouvements *stock.MouvementService
}

// NewMouvementStockHandler creates a new MouvementStockHandler
func NewMouvementStockHandler(mouvements *stock.MouvementService) *MouvementStockHandler {
	return &MouvementStockHandler{mouvements: mouvements}
}

// Create records a stock movement
func (h *MouvementStockHandler) Create(c *gin.Context) {
	var req stock.CreateMouvementRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.mouvements.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a stock movement
func (h *MouvementStockHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.mouvements.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves stock movements with filtering and pagination
func (h *MouvementStockHandler) List(c *gin.Context) {
	var filter stock.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.mouvements.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Update corrects the quantities of a stock movement
func (h *MouvementStockHandler) Update(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req stock.UpdateMouvementRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.mouvements.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a stock movement
func (h *MouvementStockHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.mouvements.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Export streams the filtered stock movements as an xlsx workbook
func (h *MouvementStockHandler) Export(c *gin.Context) {
	var filter stock.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, err := h.mouvements.ListForExport(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	data, err := export.MouvementsStock(responses)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, export.ContentTypeXLSX, "mouvements_stock.xlsx", data)
}

// StockActuelHandler serves the current stock endpoints
type StockActuelHandler struct {
	BaseHandler
	stocks *stock.StockActuelService
}

// NewStockActuelHandler creates a new StockActuelHandler
func NewStockActuelHandler(stocks *stock.StockActuelService) *StockActuelHandler {
	return &StockActuelHandler{stocks: stocks}
}

// Create opens the stock row of a product in a store
func (h *StockActuelHandler) Create(c *gin.Context) {
	var req stock.CreateStockActuelRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.stocks.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a current stock row
func (h *StockActuelHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.stocks.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves current stock rows with filtering and pagination
func (h *StockActuelHandler) List(c *gin.Context) {
	var filter stock.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.stocks.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Ajuster replaces the quantity, alert threshold and average price of a
// stock row
func (h *StockActuelHandler) Ajuster(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req stock.AjusterStockRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.stocks.Ajuster(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a current stock row
func (h *StockActuelHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.stocks.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Export streams the filtered current stock as an xlsx workbook
func (h *StockActuelHandler) Export(c *gin.Context) {
	var filter stock.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, err := h.stocks.ListForExport(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	data, err := export.StocksActuels(responses)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, export.ContentTypeXLSX, "stocks_actuels.xlsx", data)
}

// InventaireHandler serves the physical inventory endpoints
type InventaireHandler struct {
	BaseHandler
	inventaires *stock.InventaireService
}

// NewInventaireHandler creates a new InventaireHandler
func NewInventaireHandler(inventaires *stock.InventaireService) *InventaireHandler {
	return &InventaireHandler{inventaires: inventaires}
}

// Create opens an inventory count
func (h *InventaireHandler) Create(c *gin.Context) {
	var req stock.CreateInventaireRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.inventaires.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves an inventory with its lines
func (h *InventaireHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.inventaires.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves inventories with filtering and pagination
func (h *InventaireHandler) List(c *gin.Context) {
	var filter stock.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.inventaires.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// AjouterLigne counts one product on an open inventory
func (h *InventaireHandler) AjouterLigne(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req stock.AjouterLigneRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.inventaires.AjouterLigne(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Terminer closes the counting phase of an inventory
func (h *InventaireHandler) Terminer(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.inventaires.Terminer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Valider approves a finished inventory
func (h *InventaireHandler) Valider(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.inventaires.Valider(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes an inventory
func (h *InventaireHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.inventaires.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
