package routes

import (
	"os-service-api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients  = "/clients"
	PathVehicles = "/vehicles"
	PathServices = "/services"
	PathSupplies = "/supplies"
)

type crudHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	GetByID(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func addCatalogRoutes(rg *gin.RouterGroup, deps *dependencies) {
	addCrudRoutes(rg.Group(PathClients), deps.clientHandler, nil)
	addCrudRoutes(rg.Group(PathVehicles), deps.vehicleHandler, nil)

	// Services and supplies are priced catalog items: only admins change them.
	adminOnly := handlers.RequireAdmin()
	addCrudRoutes(rg.Group(PathServices), deps.serviceHandler, adminOnly)
	addCrudRoutes(rg.Group(PathSupplies), deps.supplyHandler, adminOnly)
}

// addCrudRoutes registers the five CRUD routes. guard, when set, protects the
// mutating ones.
func addCrudRoutes(g *gin.RouterGroup, h crudHandler, guard gin.HandlerFunc) {
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)

	mutate := []gin.HandlerFunc{}
	if guard != nil {
		mutate = append(mutate, guard)
	}
	g.POST("", append(mutate, h.Create)...)
	g.PUT("/:id", append(mutate, h.Update)...)
	g.DELETE("/:id", append(mutate, h.Delete)...)
}
