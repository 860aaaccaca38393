package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	request "os-service-api/internal/adapter/http/dto/request"
	response "os-service-api/internal/adapter/http/dto/response"
	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase"
	"os-service-api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStatus = pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown service order status", http.StatusBadRequest)

// TransitionObserver is notified after every successful status change.
type TransitionObserver interface {
	ObserveTransition(to string)
}

// ServiceOrderHandler exposes the service order lifecycle over HTTP.
type ServiceOrderHandler struct {
	usecase  usecase.IServiceOrderUseCase
	observer TransitionObserver
}

// NewServiceOrderHandler builds the handler. observer may be nil.
func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase, observer TransitionObserver) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc, observer: observer}
}

// Create godoc
// @Summary      Open a service order
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload body request.CreateServiceOrderRequest true "Payload"
// @Success      201 {object} response.ServiceOrderResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /service-orders [post]
func (h *ServiceOrderHandler) Create(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	h.observe(order.Status)
	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

// List godoc
// @Summary      List service orders
// @Tags         service-orders
// @Produce      json
// @Security     Bearer
// @Success      200 {array} response.ServiceOrderResponse
// @Failure      500 {object} pkg.HTTPError
// @Router       /service-orders [get]
func (h *ServiceOrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

// GetByID godoc
// @Summary      Get a service order
// @Tags         service-orders
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Service order id"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /service-orders/{id} [get]
func (h *ServiceOrderHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// History godoc
// @Summary      Status history of a service order
// @Tags         service-orders
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Service order id"
// @Success      200 {array} response.StatusChangeResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /service-orders/{id}/history [get]
func (h *ServiceOrderHandler) History(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	changes, err := h.usecase.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatusChanges(changes))
}

// UpdateDiagnosis replaces services and/or supplies while the order is in
// diagnosis.
//
// @Summary      Replace services and supplies during diagnosis
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Service order id"
// @Param        payload body request.UpdateDiagnosisRequest true "Payload"
// @Success      200 {object} response.ServiceOrderItemsResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /service-orders/{id}/update-diagnosis [put]
func (h *ServiceOrderHandler) UpdateDiagnosis(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payload request.UpdateDiagnosisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.ReviseLineItems(c.Request.Context(), payload.ToInput(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrderItems(order))
}

// UpdateStatus accepts any target status and lets the state machine decide.
//
// @Summary      Move a service order to another status
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Service order id"
// @Param        payload body request.UpdateStatusRequest true "Payload"
// @Success      200 {object} response.ServiceOrderStatusResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /service-orders/{id}/status [patch]
func (h *ServiceOrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	in, ok := payload.ToInput(id)
	if !ok {
		c.JSON(errInvalidStatus.HTTPStatus, errInvalidStatus.ToHTTPError())
		return
	}

	order, err := h.usecase.TransitionStatus(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	h.observe(order.Status)
	c.JSON(http.StatusOK, response.FromServiceOrderStatus(order))
}

// StartDiagnosis godoc
// @Summary      Start diagnosis
// @Tags         service-orders
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Service order id"
// @Success      200 {object} response.ServiceOrderStatusResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /service-orders/{id}/start-diagnosis [put]
func (h *ServiceOrderHandler) StartDiagnosis(c *gin.Context) {
	h.transitionByID(c, h.usecase.StartDiagnosis)
}

// SubmitForApproval godoc
// @Summary      Submit the budget for approval
// @Tags         service-orders
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Service order id"
// @Success      200 {object} response.ServiceOrderStatusResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /service-orders/{id}/submit-approval [put]
func (h *ServiceOrderHandler) SubmitForApproval(c *gin.Context) {
	h.transitionByID(c, h.usecase.SubmitForApproval)
}

// Approve godoc
// @Summary      Approve the budget
// @Tags         service-orders
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Service order id"
// @Success      200 {object} response.ServiceOrderStatusResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /service-orders/{id}/approve [put]
func (h *ServiceOrderHandler) Approve(c *gin.Context) {
	h.transitionByID(c, h.usecase.Approve)
}

// StartExecution godoc
// @Summary      Start execution
// @Tags         service-orders
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Service order id"
// @Success      200 {object} response.ServiceOrderStatusResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /service-orders/{id}/start-execution [put]
func (h *ServiceOrderHandler) StartExecution(c *gin.Context) {
	h.transitionByID(c, h.usecase.StartExecution)
}

// Finalize accepts an optional {"finishedAt": "..."} body.
//
// @Summary      Finish the repair
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Service order id"
// @Param        payload body request.FinalizeRequest false "Payload"
// @Success      200 {object} response.ServiceOrderStatusResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /service-orders/{id}/finalize [put]
func (h *ServiceOrderHandler) Finalize(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payload request.FinalizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	h.transition(c, func(ctx context.Context) (entities.ServiceOrder, error) {
		return h.usecase.Finalize(ctx, id, payload.FinishedAt)
	})
}

// Deliver godoc
// @Summary      Deliver the vehicle
// @Tags         service-orders
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Service order id"
// @Success      200 {object} response.ServiceOrderStatusResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /service-orders/{id}/deliver [put]
func (h *ServiceOrderHandler) Deliver(c *gin.Context) {
	h.transitionByID(c, h.usecase.Deliver)
}

// Cancel godoc
// @Summary      Cancel the service order
// @Tags         service-orders
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Service order id"
// @Success      200 {object} response.ServiceOrderStatusResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /service-orders/{id}/cancel [put]
func (h *ServiceOrderHandler) Cancel(c *gin.Context) {
	h.transitionByID(c, h.usecase.Cancel)
}

func (h *ServiceOrderHandler) transitionByID(
	c *gin.Context,
	updater func(ctx context.Context, id int64) (entities.ServiceOrder, error),
) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.transition(c, func(ctx context.Context) (entities.ServiceOrder, error) {
		return updater(ctx, id)
	})
}

func (h *ServiceOrderHandler) transition(c *gin.Context, run func(ctx context.Context) (entities.ServiceOrder, error)) {
	order, err := run(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	h.observe(order.Status)
	c.JSON(http.StatusOK, response.FromServiceOrderStatus(order))
}

func (h *ServiceOrderHandler) observe(status entities.ServiceOrderStatus) {
	if h.observer != nil {
		h.observer.ObserveTransition(status.String())
	}
}
