package controller

import (
	"ramen-kiosk/web/entity"
	"ramen-kiosk/web/middleware"
	"ramen-kiosk/web/service"

	"github.com/gin-gonic/gin"
)

// OrderController handles checkout and direct ordering.
type OrderController struct {
	orderService *service.OrderService
}

func NewOrderController(g *gin.RouterGroup, orderService *service.OrderService) *OrderController {
	a := &OrderController{orderService: orderService}
	a.initRouter(g)
	return a
}

func (a *OrderController) initRouter(g *gin.RouterGroup) {
	g.POST("/place-order", a.placeOrder)
	g.POST("/order", a.createOrder)
}

func (a *OrderController) placeOrder(c *gin.Context) {
	user := middleware.GetUser(c)

	if _, err := a.orderService.PlaceOrder(user.Id); err != nil {
		jsonError(c, "failed to place order", err)
		return
	}
	jsonMsg(c, "Order placed successfully")
}

func (a *OrderController) createOrder(c *gin.Context) {
	user := middleware.GetUser(c)

	var sel entity.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		jsonBadRequest(c, "flavor, soup base, meat and spicy level are required")
		return
	}

	orderId, err := a.orderService.CreateOrder(user.Id, sel)
	if err != nil {
		jsonError(c, "failed to create order", err)
		return
	}
	c.JSON(200, gin.H{
		"message":  "Order placed successfully",
		"order_id": orderId,
	})
}
