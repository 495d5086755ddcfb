package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/charge"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/export"
)

// CategorieChargeHandler serves the charge category endpoints
type CategorieChargeHandler struct {
	BaseHandler
	categories *charge.CategorieService
}

// NewCategorieChargeHandler creates a new CategorieChargeHandler
func NewCategorieChargeHandler(categories *charge.CategorieService) *CategorieChargeHandler {
	return &CategorieChargeHandler{categories: categories}
}

// Create registers a charge category
func (h *CategorieChargeHandler) Create(c *gin.Context) {
	var req charge.CreateCategorieRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a charge category
func (h *CategorieChargeHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves charge categories with filtering and pagination
func (h *CategorieChargeHandler) List(c *gin.Context) {
	var filter charge.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.categories.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Delete removes a charge category
func (h *CategorieChargeHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ChargeHandler serves the operating charge endpoints
type ChargeHandler struct {
	BaseHandler
	charges *charge.ChargeService
}

// NewChargeHandler creates a new ChargeHandler
func NewChargeHandler(charges *charge.ChargeService) *ChargeHandler {
	return &ChargeHandler{charges: charges}
}

// Create records an operating charge
func (h *ChargeHandler) Create(c *gin.Context) {
	var req charge.CreateChargeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.charges.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves an operating charge
func (h *ChargeHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.charges.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves operating charges with filtering and pagination
func (h *ChargeHandler) List(c *gin.Context) {
	var filter charge.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.charges.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// MarquerPayee settles an operating charge
func (h *ChargeHandler) MarquerPayee(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req charge.MarquerPayeeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.charges.MarquerPayee(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes an operating charge
func (h *ChargeHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.charges.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Export streams the filtered operating charges as an xlsx workbook
func (h *ChargeHandler) Export(c *gin.Context) {
	var filter charge.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, err := h.charges.ListForExport(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	data, err := export.Charges(responses)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, export.ContentTypeXLSX, "charges.xlsx", data)
}

// BudgetHandler serves the annual budget endpoints
type BudgetHandler struct {
	BaseHandler
	budgets *charge.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgets *charge.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// Create opens the annual budget of a category
func (h *BudgetHandler) Create(c *gin.Context) {
	var req charge.CreateBudgetRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.budgets.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a budget
func (h *BudgetHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.budgets.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves budgets with filtering and pagination
func (h *BudgetHandler) List(c *gin.Context) {
	var filter charge.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.budgets.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// AjouterRealise accumulates spent amount on a budget
func (h *BudgetHandler) AjouterRealise(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req charge.AjouterRealiseRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.budgets.AjouterRealise(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a budget
func (h *BudgetHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.budgets.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// PlanificationHandler serves the recurring charge schedule endpoints
type PlanificationHandler struct {
	BaseHandler
	planifications *charge.PlanificationService
}

// NewPlanificationHandler creates a new PlanificationHandler
func NewPlanificationHandler(planifications *charge.PlanificationService) *PlanificationHandler {
	return &PlanificationHandler{planifications: planifications}
}

// Create schedules a recurring charge
func (h *PlanificationHandler) Create(c *gin.Context) {
	var req charge.CreatePlanificationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.planifications.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a recurring charge schedule
func (h *PlanificationHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.planifications.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves recurring charge schedules with filtering and pagination
func (h *PlanificationHandler) List(c *gin.Context) {
	var filter charge.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.planifications.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// ListActives retrieves the schedules still running
func (h *PlanificationHandler) ListActives(c *gin.Context) {
	responses, err := h.planifications.ListActives(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// AvancerEcheance moves a schedule to its next due date
func (h *PlanificationHandler) AvancerEcheance(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.planifications.AvancerEcheance(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a recurring charge schedule
func (h *PlanificationHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.planifications.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
