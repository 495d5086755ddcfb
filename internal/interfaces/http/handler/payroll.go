package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/export"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/payroll"
)

// EmployeHandler serves the employee endpoints
type EmployeHandler struct {
	BaseHandler
	employes *payroll.EmployeService
}

// NewEmployeHandler creates a new EmployeHandler
func NewEmployeHandler(employes *payroll.EmployeService) *EmployeHandler {
	return &EmployeHandler{employes: employes}
}

// Create registers an employee
func (h *EmployeHandler) Create(c *gin.Context) {
	var req payroll.CreateEmployeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.employes.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves an employee
func (h *EmployeHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.employes.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves employees with filtering and pagination
func (h *EmployeHandler) List(c *gin.Context) {
	var filter payroll.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.employes.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Update modifies the contract details of an employee
func (h *EmployeHandler) Update(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req payroll.UpdateEmployeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.employes.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Desactiver marks an employee as having left the company
func (h *EmployeHandler) Desactiver(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.employes.Desactiver(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Reactiver puts a deactivated employee back on the payroll
func (h *EmployeHandler) Reactiver(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.employes.Reactiver(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Export streams the filtered employees as an xlsx workbook
func (h *EmployeHandler) Export(c *gin.Context) {
	var filter payroll.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, err := h.employes.ListForExport(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	data, err := export.Employes(responses)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, export.ContentTypeXLSX, "employes.xlsx", data)
}

// PaieHandler serves the monthly pay slip endpoints
type PaieHandler struct {
	BaseHandler
	paies *payroll.PaieService
}

// NewPaieHandler creates a new PaieHandler
func NewPaieHandler(paies *payroll.PaieService) *PaieHandler {
	return &PaieHandler{paies: paies}
}

// Create establishes the pay slip of an employee for a month
func (h *PaieHandler) Create(c *gin.Context) {
	var req payroll.CreatePaieRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.paies.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a pay slip
func (h *PaieHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.paies.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves pay slips with filtering and pagination
func (h *PaieHandler) List(c *gin.Context) {
	var filter payroll.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.paies.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// MarquerPayee settles a pay slip
func (h *PaieHandler) MarquerPayee(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req payroll.MarquerPayeeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.paies.MarquerPayee(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a pay slip
func (h *PaieHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.paies.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Export streams the filtered pay slips as an xlsx workbook
func (h *PaieHandler) Export(c *gin.Context) {
	var filter payroll.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, err := h.paies.ListForExport(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	data, err := export.Paies(responses)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, export.ContentTypeXLSX, "paies.xlsx", data)
}

// CongeHandler serves the leave request endpoints
type CongeHandler struct {
	BaseHandler
	conges *payroll.CongeService
}

// NewCongeHandler creates a new CongeHandler
func NewCongeHandler(conges *payroll.CongeService) *CongeHandler {
	return &CongeHandler{conges: conges}
}

// Create files a leave request
func (h *CongeHandler) Create(c *gin.Context) {
	var req payroll.CreateCongeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.conges.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a leave request
func (h *CongeHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.conges.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves leave requests with filtering and pagination
func (h *CongeHandler) List(c *gin.Context) {
	var filter payroll.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.conges.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// ListByEmploye retrieves the leave history of one employee
func (h *CongeHandler) ListByEmploye(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	responses, err := h.conges.ListByEmploye(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// Approuver approves a pending leave request
func (h *CongeHandler) Approuver(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.conges.Approuver(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a leave request
func (h *CongeHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.conges.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
