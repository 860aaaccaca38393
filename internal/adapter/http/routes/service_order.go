package routes

import (
	"os-service-api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, h *handlers.ServiceOrderHandler) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.GetByID)
		orders.GET("/:id/history", h.History)

		orders.PUT("/:id/update-diagnosis", h.UpdateDiagnosis)
		orders.PATCH("/:id/status", h.UpdateStatus)

		// Named transitions.
		orders.PUT("/:id/start-diagnosis", h.StartDiagnosis)
		orders.PUT("/:id/submit-approval", h.SubmitForApproval)
		orders.PUT("/:id/approve", h.Approve)
		orders.PUT("/:id/start-execution", h.StartExecution)
		orders.PUT("/:id/finalize", h.Finalize)
		orders.PUT("/:id/deliver", h.Deliver)
		orders.PUT("/:id/cancel", h.Cancel)
	}
}
