// Package controller provides the HTTP handlers of the kiosk ordering API.
package controller

import (
	"ramen-kiosk/web/entity"
	"ramen-kiosk/web/service"

	"github.com/gin-gonic/gin"
)

// AuthController handles registration and login.
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController creates the controller and registers its public routes.
func NewAuthController(g *gin.RouterGroup, authService *service.AuthService) *AuthController {
	a := &AuthController{authService: authService}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)
	g.POST("/token", a.login)
}

func (a *AuthController) register(c *gin.Context) {
	var req entity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonBadRequest(c, "username and password are required")
		return
	}

	if err := a.authService.Register(req.Username, req.Password, req.IsAdmin); err != nil {
		jsonError(c, "registration failed", err)
		return
	}
	jsonMsg(c, "User registered successfully")
}

func (a *AuthController) login(c *gin.Context) {
	var req entity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonBadRequest(c, "username and password are required")
		return
	}

	token, err := a.authService.Login(req.Username, req.Password)
	if err != nil {
		jsonError(c, "login failed", err)
		return
	}
	jsonObj(c, entity.Token{
		Message:     "Login successfully",
		AccessToken: token,
		TokenType:   "bearer",
	})
}
