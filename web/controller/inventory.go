package controller

import (
	"ramen-kiosk/web/entity"
	"ramen-kiosk/web/service"

	"github.com/gin-gonic/gin"
)

// InventoryController handles the admin-only stock and sales views.
type InventoryController struct {
	inventoryService *service.InventoryService
	orderService     *service.OrderService
}

func NewInventoryController(g *gin.RouterGroup, inventoryService *service.InventoryService, orderService *service.OrderService) *InventoryController {
	a := &InventoryController{
		inventoryService: inventoryService,
		orderService:     orderService,
	}
	a.initRouter(g)
	return a
}

func (a *InventoryController) initRouter(g *gin.RouterGroup) {
	g.GET("/inventory", a.getInventory)
	g.PUT("/inventory/:item_name", a.updateInventory)
	g.GET("/sales", a.getSales)
}

func (a *InventoryController) getInventory(c *gin.Context) {
	counters, err := a.inventoryService.GetInventory()
	if err != nil {
		jsonError(c, "failed to load inventory", err)
		return
	}
	jsonObj(c, counters)
}

func (a *InventoryController) updateInventory(c *gin.Context) {
	itemName := c.Param("item_name")

	var req entity.InventoryUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonBadRequest(c, "quantity is required")
		return
	}

	if err := a.inventoryService.Upsert(itemName, req.Quantity); err != nil {
		jsonError(c, "failed to update inventory", err)
		return
	}
	jsonMsg(c, "Inventory updated successfully")
}

func (a *InventoryController) getSales(c *gin.Context) {
	sales, err := a.orderService.GetSales()
	if err != nil {
		jsonError(c, "failed to load sales", err)
		return
	}
	jsonObj(c, sales)
}
