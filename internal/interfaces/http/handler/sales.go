package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/export"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/sales"
)

// MagasinHandler serves the store endpoints
type MagasinHandler struct {
	BaseHandler
	magasins *sales.MagasinService
}

// NewMagasinHandler creates a new MagasinHandler
func NewMagasinHandler(magasins *sales.MagasinService) *MagasinHandler {
	return &MagasinHandler{magasins: magasins}
}

// Create registers a store
func (h *MagasinHandler) Create(c *gin.Context) {
	var req sales.CreateMagasinRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.magasins.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a store
func (h *MagasinHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.magasins.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves stores with filtering and pagination
func (h *MagasinHandler) List(c *gin.Context) {
	var filter sales.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.magasins.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Update modifies a store
func (h *MagasinHandler) Update(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req sales.CreateMagasinRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.magasins.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a store
func (h *MagasinHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.magasins.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ClientHandler serves the client endpoints
type ClientHandler struct {
	BaseHandler
	clients *sales.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clients *sales.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// Create registers a client
func (h *ClientHandler) Create(c *gin.Context) {
	var req sales.CreateClientRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.clients.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a client
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.clients.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves clients with filtering and pagination
func (h *ClientHandler) List(c *gin.Context) {
	var filter sales.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.clients.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Update modifies a client
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req sales.CreateClientRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.clients.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a client
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CommercialHandler serves the sales rep endpoints
type CommercialHandler struct {
	BaseHandler
	commerciaux *sales.CommercialService
}

// NewCommercialHandler creates a new CommercialHandler
func NewCommercialHandler(commerciaux *sales.CommercialService) *CommercialHandler {
	return &CommercialHandler{commerciaux: commerciaux}
}

// Create registers a sales rep
func (h *CommercialHandler) Create(c *gin.Context) {
	var req sales.CreateCommercialRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.commerciaux.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a sales rep
func (h *CommercialHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.commerciaux.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves sales reps with filtering and pagination
func (h *CommercialHandler) List(c *gin.Context) {
	var filter sales.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.commerciaux.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Update modifies a sales rep
func (h *CommercialHandler) Update(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req sales.UpdateCommercialRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.commerciaux.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Desactiver deactivates a sales rep
func (h *CommercialHandler) Desactiver(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.commerciaux.Desactiver(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Reactiver reactivates a sales rep
func (h *CommercialHandler) Reactiver(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.commerciaux.Reactiver(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// VenteHandler serves the sale endpoints
type VenteHandler struct {
	BaseHandler
	ventes *sales.VenteService
}

// NewVenteHandler creates a new VenteHandler
func NewVenteHandler(ventes *sales.VenteService) *VenteHandler {
	return &VenteHandler{ventes: ventes}
}

// Create records a sale
func (h *VenteHandler) Create(c *gin.Context) {
	var req sales.CreateVenteRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.ventes.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// Get retrieves a sale
func (h *VenteHandler) Get(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	response, err := h.ventes.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// List retrieves sales with filtering and pagination
func (h *VenteHandler) List(c *gin.Context) {
	var filter sales.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, total, err := h.ventes.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	page, pageSize := paging(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, responses, total, page, pageSize)
}

// Update modifies a sale
func (h *VenteHandler) Update(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	var req sales.UpdateVenteRequest
	if !h.bindJSON(c, &req) {
		return
	}
	response, err := h.ventes.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a sale
func (h *VenteHandler) Delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.ventes.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Export streams the filtered sales as an xlsx workbook
func (h *VenteHandler) Export(c *gin.Context) {
	var filter sales.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	responses, err := h.ventes.ListForExport(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	data, err := export.Ventes(responses)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, export.ContentTypeXLSX, "ventes.xlsx", data)
}
