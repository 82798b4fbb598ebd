// Package web assembles the HTTP server of the ramen kiosk backend.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"

	"ramen-kiosk/config"
	"ramen-kiosk/logger"
	"ramen-kiosk/util/common"
	"ramen-kiosk/web/controller"
	"ramen-kiosk/web/middleware"
	"ramen-kiosk/web/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Server wires the services and controllers over a shared database pool.
type Server struct {
	cfg *config.Config
	db  *gorm.DB

	httpServer *http.Server
	listener   net.Listener

	authService      *service.AuthService
	menuService      *service.MenuService
	cartService      *service.CartService
	inventoryService *service.InventoryService
	orderService     *service.OrderService

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a web server over the given configuration and database.
func NewServer(cfg *config.Config, db *gorm.DB) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:    cfg,
		db:     db,
		ctx:    ctx,
		cancel: cancel,
	}
	s.initServices()
	return s
}

func (s *Server) initServices() {
	s.authService = service.NewAuthService(s.db, s.cfg.TokenSecret, s.cfg.TokenTTL)
	s.menuService = service.NewMenuService(s.db)
	s.cartService = service.NewCartService(s.db, s.menuService)
	s.inventoryService = service.NewInventoryService(s.db)
	s.orderService = service.NewOrderService(s.db, s.menuService, s.inventoryService)
}

// initRouter initializes gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() *gin.Engine {
	if s.cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Public routes
	public := engine.Group("/")
	controller.NewAuthController(public, s.authService)
	controller.NewMenuController(public, s.menuService)

	// Authenticated routes
	authed := engine.Group("/")
	authed.Use(middleware.TokenAuth(s.authService))
	controller.NewCartController(authed, s.cartService)
	controller.NewOrderController(authed, s.orderService)

	// Admin-only routes
	admin := engine.Group("/")
	admin.Use(middleware.TokenAuth(s.authService), middleware.AdminRequired())
	controller.NewInventoryController(admin, s.inventoryService, s.orderService)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine
}

// Start binds the listener and serves requests until Stop is called.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	engine := s.initRouter()

	listenAddr := net.JoinHostPort(s.cfg.Listen, strconv.Itoa(s.cfg.Port))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("kiosk server running on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	s.cancel()
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
