package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/stocktrail/inventory-api/docs"
	v1 "github.com/stocktrail/inventory-api/internal/api/handler/v1"
	"github.com/stocktrail/inventory-api/internal/api/middleware"
	"github.com/stocktrail/inventory-api/internal/config"
	"github.com/stocktrail/inventory-api/internal/repository"
	"github.com/stocktrail/inventory-api/internal/repository/dao"
	"github.com/stocktrail/inventory-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	catalogHandler := s.initCatalogHandler(db)
	stockHandler := s.initStockHandler(db)
	dashboardHandler := s.initDashboardHandler(db)
	s.MountHandlers(authHandler, catalogHandler, stockHandler, dashboardHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initCatalogHandler(db *gorm.DB) *v1.CatalogHandler {
	catalogDAO := dao.NewCatalogDAO(db)
	repo := repository.NewCatalogRepository(catalogDAO)
	svc := service.NewCatalogService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewCatalogHandler(svc, uSvc)

	return handler
}

func (s *Server) initStockHandler(db *gorm.DB) *v1.StockHandler {
	stockDAO := dao.NewStockDAO(db)
	repo := repository.NewStockRepository(stockDAO)
	svc := service.NewStockService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewStockHandler(svc, uSvc)

	return handler
}

func (s *Server) initDashboardHandler(db *gorm.DB) *v1.DashboardHandler {
	catalogDAO := dao.NewCatalogDAO(db)
	repo := repository.NewCatalogRepository(catalogDAO)
	svc := service.NewDashboardService(repo)
	handler := v1.NewDashboardHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, catalogHandler *v1.CatalogHandler, stockHandler *v1.StockHandler, dashboardHandler *v1.DashboardHandler) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/dashboard", dashboardHandler.HandleGetDashboard)

		authed.GET("/categories", catalogHandler.HandleListCategories)
		authed.POST("/categories", catalogHandler.HandleCreateCategory)
		authed.PUT("/categories/:categoryID", catalogHandler.HandleUpdateCategory)
		authed.DELETE("/categories/:categoryID", catalogHandler.HandleDeleteCategory)

		authed.GET("/suppliers", catalogHandler.HandleListSuppliers)
		authed.POST("/suppliers", catalogHandler.HandleCreateSupplier)
		authed.PUT("/suppliers/:supplierID", catalogHandler.HandleUpdateSupplier)
		authed.DELETE("/suppliers/:supplierID", catalogHandler.HandleDeleteSupplier)

		authed.GET("/products", catalogHandler.HandleListProducts)
		authed.GET("/products/:productID", catalogHandler.HandleGetProduct)
		authed.POST("/products", catalogHandler.HandleCreateProduct)
		authed.PUT("/products/:productID", catalogHandler.HandleUpdateProduct)
		authed.DELETE("/products/:productID", catalogHandler.HandleDeleteProduct)

		authed.POST("/stock/in", stockHandler.HandleStockIn)
		authed.POST("/stock/out", stockHandler.HandleStockOut)
		authed.GET("/stock/history", stockHandler.HandleStockHistory)

		// Browser form flow.
		authed.POST("/products/:productID/stock-in", stockHandler.HandleStockInForm)
		authed.POST("/products/:productID/stock-out", stockHandler.HandleStockOutForm)
		authed.GET("/products/:productID/stock-history", stockHandler.HandleProductStockHistory)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Inventory Tracking API"
	docs.SwaggerInfo.Description = "Catalog and stock management with an append-only stock ledger."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
