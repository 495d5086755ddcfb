package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/export"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/supply"
)

// FournisseurHandler serves the supplier endpoints
type FournisseurHandler struct {
	BaseHandler
	fournisseurs *supply.FournisseurService
}

// NewFournisseurHandler creates a new FournisseurHandler
func NewFournisseurHandler(fournisseurs *supply.FournisseurService) *FournisseurHandler {
	return &FournisseurHandler{fournisseurs: fournisseurs}
}

// Create registers a supplier
func (h *FournisseurHandler) Create(c *gin.Context) {
	var req supply.CreateFournisseurRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.fournisseurs.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a supplier
func (h *FournisseurHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.fournisseurs.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves suppliers with filtering and pagination
func (h *FournisseurHandler) List(c *gin.Context) {
	var filter supply.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.fournisseurs.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Update modifies a supplier
func (h *FournisseurHandler) Update(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req supply.UpdateFournisseurRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.fournisseurs.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a supplier
func (h *FournisseurHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.fournisseurs.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ProduitHandler serves the product catalogue endpoints
type ProduitHandler struct {
	BaseHandler
	produits *supply.ProduitService
}

// NewProduitHandler creates a new ProduitHandler
func NewProduitHandler(produits *supply.ProduitService) *ProduitHandler {
	return &ProduitHandler{produits: produits}
}

// Create registers a product
func (h *ProduitHandler) Create(c *gin.Context) {
	var req supply.CreateProduitRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.produits.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a product
func (h *ProduitHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.produits.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves products with filtering and pagination
func (h *ProduitHandler) List(c *gin.Context) {
	var filter supply.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.produits.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Update modifies a product
func (h *ProduitHandler) Update(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req supply.UpdateProduitRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.produits.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a product
func (h *ProduitHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.produits.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// LivraisonHandler serves the supplier delivery endpoints
type LivraisonHandler struct {
	BaseHandler
	livraisons *supply.LivraisonService
}

// NewLivraisonHandler creates a new LivraisonHandler
func NewLivraisonHandler(livraisons *supply.LivraisonService) *LivraisonHandler {
	return &LivraisonHandler{livraisons: livraisons}
}

// Create records a delivery
func (h *LivraisonHandler) Create(c *gin.Context) {
	var req supply.CreateLivraisonRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.livraisons.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a delivery
func (h *LivraisonHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.livraisons.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves deliveries with filtering and pagination
func (h *LivraisonHandler) List(c *gin.Context) {
	var filter supply.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.livraisons.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Update modifies a delivery
func (h *LivraisonHandler) Update(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req supply.UpdateLivraisonRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.livraisons.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a delivery
func (h *LivraisonHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.livraisons.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Export streams the filtered deliveries as an xlsx workbook
func (h *LivraisonHandler) Export(c *gin.Context) {
	var filter supply.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, err := h.livraisons.ListForExport(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	data, err := export.Livraisons(responses)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, export.ContentTypeXLSX, "livraisons.xlsx", data)
}
