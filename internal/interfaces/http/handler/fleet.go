package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/export"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/fleet"
)

// VehiculeHandler serves the vehicle fleet endpoints
type VehiculeHandler struct {
	BaseHandler
	vehicules *fleet.VehiculeService
}

// NewVehiculeHandler creates a new VehiculeHandler
func NewVehiculeHandler(vehicules *fleet.VehiculeService) *VehiculeHandler {
	return &VehiculeHandler{vehicules: vehicules}
}

// Create registers a vehicle
func (h *VehiculeHandler) Create(c *gin.Context) {
	var req fleet.CreateVehiculeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.vehicules.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a vehicle
func (h *VehiculeHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.vehicules.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves vehicles with filtering and pagination
func (h *VehiculeHandler) List(c *gin.Context) {
	var filter fleet.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.vehicules.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// ChangerStatut moves a vehicle to another operational status
func (h *VehiculeHandler) ChangerStatut(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req fleet.ChangerStatutRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.vehicules.ChangerStatut(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a vehicle
func (h *VehiculeHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.vehicules.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Export streams the filtered vehicles as an xlsx workbook
func (h *VehiculeHandler) Export(c *gin.Context) {
	var filter fleet.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, err := h.vehicules.ListForExport(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	data, err := export.Vehicules(responses)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, export.ContentTypeXLSX, "vehicules.xlsx", data)
}

// CarburantHandler serves the fuel consumption endpoints
type CarburantHandler struct {
	BaseHandler
	carburants *fleet.CarburantService
}

// NewCarburantHandler creates a new CarburantHandler
func NewCarburantHandler(carburants *fleet.CarburantService) *CarburantHandler {
	return &CarburantHandler{carburants: carburants}
}

// Create records a refuelling
func (h *CarburantHandler) Create(c *gin.Context) {
	var req fleet.CreateCarburantRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.carburants.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a refuelling record
func (h *CarburantHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.carburants.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves refuelling records with filtering and pagination
func (h *CarburantHandler) List(c *gin.Context) {
	var filter fleet.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.carburants.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Update corrects a refuelling record
func (h *CarburantHandler) Update(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req fleet.UpdateCarburantRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.carburants.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a refuelling record
func (h *CarburantHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.carburants.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Export streams the filtered refuelling records as an xlsx workbook
func (h *CarburantHandler) Export(c *gin.Context) {
	var filter fleet.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, err := h.carburants.ListForExport(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	data, err := export.Carburants(responses)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, export.ContentTypeXLSX, "carburants.xlsx", data)
}

// MaintenanceHandler serves the vehicle maintenance endpoints
type MaintenanceHandler struct {
	BaseHandler
	maintenances *fleet.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler
func NewMaintenanceHandler(maintenances *fleet.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenances: maintenances}
}

// Create records a maintenance intervention
func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req fleet.CreateMaintenanceRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.maintenances.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a maintenance intervention
func (h *MaintenanceHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.maintenances.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves maintenance interventions with filtering and pagination
func (h *MaintenanceHandler) List(c *gin.Context) {
	var filter fleet.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.maintenances.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// ListByVehicule retrieves the maintenance history of one vehicle
func (h *MaintenanceHandler) ListByVehicule(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	responses, err := h.maintenances.ListByVehicule(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// Delete removes a maintenance intervention
func (h *MaintenanceHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.maintenances.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
