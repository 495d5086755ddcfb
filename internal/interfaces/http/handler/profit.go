package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/export"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/profit"
)

// AnalyseProfitHandler serves the per-product profitability endpoints
type AnalyseProfitHandler struct {
	BaseHandler
	analyses *profit.AnalyseService
}

// NewAnalyseProfitHandler creates a new AnalyseProfitHandler
func NewAnalyseProfitHandler(analyses *profit.AnalyseService) *AnalyseProfitHandler {
	return &AnalyseProfitHandler{analyses: analyses}
}

// Create records a profitability analysis
func (h *AnalyseProfitHandler) Create(c *gin.Context) {
	var req profit.CreateAnalyseRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.analyses.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a profitability analysis
func (h *AnalyseProfitHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.analyses.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves profitability analyses with filtering and pagination
func (h *AnalyseProfitHandler) List(c *gin.Context) {
	var filter profit.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.analyses.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Update replaces the figures of a profitability analysis
func (h *AnalyseProfitHandler) Update(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req profit.UpdateAnalyseRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.analyses.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a profitability analysis
func (h *AnalyseProfitHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.analyses.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Export streams the filtered profitability analyses as an xlsx workbook
func (h *AnalyseProfitHandler) Export(c *gin.Context) {
	var filter profit.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, err := h.analyses.ListForExport(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	data, err := export.Analyses(responses)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, export.ContentTypeXLSX, "analyses_profit.xlsx", data)
}

// RapportProfitHandler serves the monthly profit report endpoints
type RapportProfitHandler struct {
	BaseHandler
	rapports *profit.RapportService
}

// NewRapportProfitHandler creates a new RapportProfitHandler
func NewRapportProfitHandler(rapports *profit.RapportService) *RapportProfitHandler {
	return &RapportProfitHandler{rapports: rapports}
}

// Generer builds or rebuilds the monthly report of a store
func (h *RapportProfitHandler) Generer(c *gin.Context) {
	var req profit.GenererRapportRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.rapports.Generer(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// GetByPeriode retrieves the report of a store for one month
func (h *RapportProfitHandler) GetByPeriode(c *gin.Context) {
	annee, err := strconv.Atoi(c.Query("annee"))
	if err != nil {
		h.BadRequest(c, "Paramètre annee invalide")
		return
	}
	mois, err := strconv.Atoi(c.Query("mois"))
	if err != nil {
		h.BadRequest(c, "Paramètre mois invalide")
		return
	}
	magasinID, err := uuid.Parse(c.Query("magasin_id"))
	if err != nil {
		h.BadRequest(c, "Paramètre magasin_id invalide")
		return
	}
	response, err := h.rapports.GetByPeriode(c.Request.Context(), annee, mois, magasinID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves monthly reports with filtering and pagination
func (h *RapportProfitHandler) List(c *gin.Context) {
	var filter profit.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.rapports.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Delete removes a monthly report
func (h *RapportProfitHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.rapports.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
