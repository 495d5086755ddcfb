package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/credit"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/export"
)

// CreditHandler serves the customer credit endpoints, payments included
type CreditHandler struct {
	BaseHandler
	credits   *credit.CreditService
	paiements *credit.PaiementService
}

// NewCreditHandler creates a new CreditHandler
func NewCreditHandler(credits *credit.CreditService, paiements *credit.PaiementService) *CreditHandler {
	return &CreditHandler{credits: credits, paiements: paiements}
}

// Create opens a credit line
func (h *CreditHandler) Create(c *gin.Context) {
	var req credit.CreateCreditRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.credits.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a credit
func (h *CreditHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.credits.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves credits with filtering and pagination
func (h *CreditHandler) List(c *gin.Context) {
	var filter credit.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.credits.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Update corrects the quantity and unit price of a credit
func (h *CreditHandler) Update(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req credit.UpdateCreditRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.credits.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a credit
func (h *CreditHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.credits.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Export streams the filtered credits as an xlsx workbook
func (h *CreditHandler) Export(c *gin.Context) {
	var filter credit.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, err := h.credits.ListForExport(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	data, err := export.Credits(responses)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, export.ContentTypeXLSX, "credits.xlsx", data)
}

// EnregistrerPaiement records a payment against the credit and refreshes
// its paid and outstanding amounts
func (h *CreditHandler) EnregistrerPaiement(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req credit.CreatePaiementRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.paiements.Enregistrer(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// ListPaiements retrieves the payments of one credit, oldest first
func (h *CreditHandler) ListPaiements(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	responses, err := h.paiements.ListByCredit(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// SupprimerPaiement removes a payment and refreshes the credit amounts
func (h *CreditHandler) SupprimerPaiement(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.paiements.Supprimer(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
