package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/interfaces/http/dto"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/interfaces/http/middleware"
)

// BaseHandler provides the response and error plumbing shared by every
// module handler
type BaseHandler struct{}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a 200 response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest,
		dto.NewErrorResponse(dto.ErrCodeBadRequest, message, middleware.GetRequestID(c)))
}

// Unauthorized sends a 401 response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message, middleware.GetRequestID(c)))
}

// Attachment streams a generated file as a download
func (h *BaseHandler) Attachment(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// HandleError maps service errors onto the HTTP taxonomy: validation
// failures carry every violated field on a 400, unknown resources give
// 404, integrity conflicts give 409, anything unexpected gives 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	requestID := middleware.GetRequestID(c)

	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(verr.Fields, requestID))
		return
	}

	var derr *shared.DomainError
	if errors.As(err, &derr) {
		switch derr.Code {
		case "NOT_FOUND":
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrCodeNotFound, "Ressource introuvable", requestID))
		case "ALREADY_EXISTS", "DUPLICATE_NUMERO":
			c.JSON(http.StatusConflict, dto.NewErrorResponse(dto.ErrCodeConflict, "Conflit avec une ressource existante", requestID))
		case "UNAUTHORIZED":
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrCodeUnauthorized, derr.Message, requestID))
		case "FORBIDDEN":
			c.JSON(http.StatusForbidden, dto.NewErrorResponse(dto.ErrCodeForbidden, derr.Message, requestID))
		default:
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, derr.Message, requestID))
		}
		return
	}

	c.JSON(http.StatusInternalServerError,
		dto.NewErrorResponse(dto.ErrCodeInternal, "Une erreur inattendue est survenue", requestID))
}

// paging normalizes the page inputs for the pagination meta, matching
// the defaults the services apply
func paging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}

// parseID reads the :id path parameter
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds the request body, reporting malformed input as 400.
// Constraint violations from the binding tags come back with one entry
// per violated field.
func (h *BaseHandler) bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if fields := middleware.FormatBindingErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewValidationErrorResponse(fields, middleware.GetRequestID(c)))
			return false
		}
		h.BadRequest(c, "Corps de requête invalide: "+err.Error())
		return false
	}
	return true
}

// bindQuery binds the query string, reporting malformed input as 400
func (h *BaseHandler) bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		if fields := middleware.FormatBindingErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewValidationErrorResponse(fields, middleware.GetRequestID(c)))
			return false
		}
		h.BadRequest(c, "Paramètres de requête invalides: "+err.Error())
		return false
	}
	return true
}

// requireID reads the :id path parameter, reporting a malformed one as 400
func (h *BaseHandler) requireID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Identifiant invalide")
	}
	return id, ok
}
