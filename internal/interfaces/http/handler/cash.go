package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/cash"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/export"
)

// CaisseHandler serves the cash register endpoints
type CaisseHandler struct {
	BaseHandler
	mouvements *cash.MouvementService
}

// NewCaisseHandler creates a new CaisseHandler
func NewCaisseHandler(mouvements *cash.MouvementService) *CaisseHandler {
	return &CaisseHandler{mouvements: mouvements}
}

// Create records a cash register entry
func (h *CaisseHandler) Create(c *gin.Context) {
	var req cash.CreateMouvementRequest
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

// Get retrieves a cash register entry
func (h *CaisseHandler) Get(c *gin.Context) {
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

// List retrieves cash register entries with filtering and pagination
func (h *CaisseHandler) List(c *gin.Context) {
	var filter cash.ListFilter
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

// Solde computes the register balance over the filtered period
func (h *CaisseHandler) Solde(c *gin.Context) {
	var filter cash.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	response, err := h.mouvements.Solde(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a cash register entry
func (h *CaisseHandler) Delete(c *gin.Context) {
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

// Export streams the filtered ledger as a CSV file
func (h *CaisseHandler) Export(c *gin.Context) {
	var filter cash.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, err := h.mouvements.ListForExport(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	data, err := export.Caisse(responses)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, export.ContentTypeCSV, "caisse.csv", data)
}
