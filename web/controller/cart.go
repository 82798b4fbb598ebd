package controller

import (
	"strconv"

	"ramen-kiosk/web/entity"
	"ramen-kiosk/web/middleware"
	"ramen-kiosk/web/service"

	"github.com/gin-gonic/gin"
)

// CartController handles the authenticated cart endpoints.
type CartController struct {
	cartService *service.CartService
}

func NewCartController(g *gin.RouterGroup, cartService *service.CartService) *CartController {
	a := &CartController{cartService: cartService}
	a.initRouter(g)
	return a
}

func (a *CartController) initRouter(g *gin.RouterGroup) {
	g.POST("/add-to-cart", a.addToCart)
	g.GET("/cart", a.getCart)
	g.DELETE("/cart/:cart_item_id", a.removeFromCart)
	g.PUT("/cart/:cart_item_id", a.updateQuantity)
}

func (a *CartController) addToCart(c *gin.Context) {
	user := middleware.GetUser(c)

	var req entity.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonBadRequest(c, "invalid cart item")
		return
	}

	if _, err := a.cartService.AddItem(user.Id, req); err != nil {
		jsonError(c, "invalid menu selection", err)
		return
	}
	jsonMsg(c, "Item added to cart successfully")
}

func (a *CartController) getCart(c *gin.Context) {
	user := middleware.GetUser(c)

	lines, err := a.cartService.GetCart(user.Id)
	if err != nil {
		jsonError(c, "failed to load cart", err)
		return
	}
	jsonObj(c, lines)
}

func (a *CartController) removeFromCart(c *gin.Context) {
	user := middleware.GetUser(c)

	cartItemId, err := strconv.Atoi(c.Param("cart_item_id"))
	if err != nil {
		jsonBadRequest(c, "invalid cart item id")
		return
	}

	if err := a.cartService.RemoveItem(user.Id, cartItemId); err != nil {
		jsonError(c, "failed to remove cart item", err)
		return
	}
	jsonMsg(c, "Item removed from cart")
}

func (a *CartController) updateQuantity(c *gin.Context) {
	user := middleware.GetUser(c)

	cartItemId, err := strconv.Atoi(c.Param("cart_item_id"))
	if err != nil {
		jsonBadRequest(c, "invalid cart item id")
		return
	}

	var newQuantity int
	if raw, ok := c.GetQuery("new_quantity"); ok {
		newQuantity, err = strconv.Atoi(raw)
		if err != nil {
			jsonBadRequest(c, "new_quantity must be an integer")
			return
		}
	} else {
		var body struct {
			NewQuantity int `json:"new_quantity"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			jsonBadRequest(c, "new_quantity is required")
			return
		}
		newQuantity = body.NewQuantity
	}

	if err := a.cartService.UpdateQuantity(user.Id, cartItemId, newQuantity); err != nil {
		jsonError(c, "quantity must be greater than 0", err)
		return
	}
	jsonMsg(c, "Cart item quantity updated")
}
