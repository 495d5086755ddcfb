package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/report"
)

// StatistiquesHandler serves the dashboard statistics endpoints
type StatistiquesHandler struct {
	BaseHandler
	statistiques *report.StatistiquesService
}

// NewStatistiquesHandler creates a new StatistiquesHandler
func NewStatistiquesHandler(statistiques *report.StatistiquesService) *StatistiquesHandler {
	return &StatistiquesHandler{statistiques: statistiques}
}

// Ventes aggregates the sales over the filtered period
func (h *StatistiquesHandler) Ventes(c *gin.Context) {
	var filter report.StatistiquesFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	response, err := h.statistiques.Ventes(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Livraisons aggregates the supplier deliveries over the filtered period
func (h *StatistiquesHandler) Livraisons(c *gin.Context) {
	var filter report.StatistiquesFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	response, err := h.statistiques.Livraisons(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Credits aggregates the customer credits over the filtered period
func (h *StatistiquesHandler) Credits(c *gin.Context) {
	var filter report.StatistiquesFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	response, err := h.statistiques.Credits(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Charges aggregates the operating charges over the filtered period
func (h *StatistiquesHandler) Charges(c *gin.Context) {
	var filter report.StatistiquesFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	response, err := h.statistiques.Charges(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Profits aggregates the profitability analyses over the filtered period
func (h *StatistiquesHandler) Profits(c *gin.Context) {
	var filter report.StatistiquesFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	response, err := h.statistiques.Profits(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}
