package handlers

import (
	"net/http"
	request "os-service-api/internal/adapter/http/dto/request"
	response "os-service-api/internal/adapter/http/dto/response"
	"os-service-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceHandler exposes labor catalog CRUD.
type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	service, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromService(service))
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	service, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromService(service))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	service, err := h.usecase.Update(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromService(service))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SupplyHandler exposes parts catalog CRUD.
type SupplyHandler struct {
	usecase usecase.ISupplyUseCase
}

func NewSupplyHandler(uc usecase.ISupplyUseCase) *SupplyHandler {
	return &SupplyHandler{usecase: uc}
}

func (h *SupplyHandler) Create(c *gin.Context) {
	var payload request.SupplyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	supply, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSupply(supply))
}

func (h *SupplyHandler) List(c *gin.Context) {
	supplies, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSupplies(supplies))
}

func (h *SupplyHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	supply, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSupply(supply))
}

func (h *SupplyHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payload request.SupplyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	supply, err := h.usecase.Update(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSupply(supply))
}

func (h *SupplyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
