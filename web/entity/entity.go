// Package entity defines the request and response shapes of the kiosk API.
package entity

// Msg is the standard confirmation envelope for mutating endpoints.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Token struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MenuEntry struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// Selection is the four menu choices making up one bowl of ramen.
type Selection struct {
	FlavorId     int `json:"flavor_id" binding:"required"`
	SoupBaseId   int `json:"soup_base_id" binding:"required"`
	MeatId       int `json:"meat_id" binding:"required"`
	SpicyLevelId int `json:"spicy_level_id" binding:"required"`
}

type CartItemRequest struct {
	Selection
	Quantity int `json:"quantity"`
}

// CartLine is a cart item with its menu references resolved to names.
type CartLine struct {
	CartItemId int    `json:"cart_item_id"`
	Flavor     string `json:"flavor"`
	SoupBase   string `json:"soup_base"`
	Meat       string `json:"meat"`
	SpicyLevel string `json:"spicy_level"`
	Quantity   int    `json:"quantity"`
}

type InventoryUpdate struct {
	Quantity int `json:"quantity"`
}

// SaleRecord is one order joined against its user and menu names.
type SaleRecord struct {
	OrderId    int    `json:"order_id"`
	Username   string `json:"username"`
	Flavor     string `json:"flavor"`
	SoupBase   string `json:"soup_base"`
	Meat       string `json:"meat"`
	SpicyLevel string `json:"spicy_level"`
	OrderDate  string `json:"order_date"`
}
