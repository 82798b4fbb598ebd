package controller

import (
	"ramen-kiosk/web/service"

	"github.com/gin-gonic/gin"
)

// MenuController serves the public menu.
type MenuController struct {
	menuService *service.MenuService
}

func NewMenuController(g *gin.RouterGroup, menuService *service.MenuService) *MenuController {
	a := &MenuController{menuService: menuService}
	a.initRouter(g)
	return a
}

func (a *MenuController) initRouter(g *gin.RouterGroup) {
	g.GET("/menu", a.getMenu)
}

func (a *MenuController) getMenu(c *gin.Context) {
	menu, err := a.menuService.GetMenu()
	if err != nil {
		jsonError(c, "failed to load menu", err)
		return
	}
	jsonObj(c, menu)
}
