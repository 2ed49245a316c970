package router

import (
	"time"

	"shopstock/internal/config"
	"shopstock/internal/handler"
	"shopstock/internal/middleware"
	"shopstock/internal/realtime"
	"shopstock/internal/repository"
	"shopstock/internal/service"
	"shopstock/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	dispatcher := worker.NewDispatcher(rdb)
	stock := service.NewStockAdjuster(productRepo, movementRepo, cfg.StockAdjustmentMode)

	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo, stock)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, productRepo, stock)
	inventorySvc := service.NewInventoryService(productRepo, movementRepo, dispatcher)
	dashboardSvc := service.NewDashboardService(saleRepo, productRepo, rdb)
	reportSvc := service.NewReportService(saleRepo, purchaseRepo, productRepo, cfg)
	settingsSvc := service.NewSettingsService(settingRepo, cfg)

	events := realtime.NewPublisher(rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc, events)
	salesH := handler.NewSalesHandler(saleSvc, events)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc, events)
	inventoryH := handler.NewInventoryHandler(inventorySvc, events)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc, events)
	eventsH := handler.NewEventsHandler(events)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes. Roles: cashier, admin — declared per endpoint.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		anyRole := middleware.RequireRole("cashier", "admin")
		adminOnly := middleware.RequireRole("admin")

		v1.POST("/sales", anyRole, salesH.Record)
		v1.GET("/sales", anyRole, salesH.List)
		v1.GET("/sales/:id", anyRole, salesH.Get)

		v1.POST("/purchases", adminOnly, purchasesH.Record)
		v1.GET("/purchases", anyRole, purchasesH.List)
		v1.GET("/purchases/:id", anyRole, purchasesH.Get)

		v1.GET("/products", anyRole, productsH.List)
		v1.GET("/products/:id", anyRole, productsH.Get)
		v1.POST("/products", adminOnly, productsH.Create)
		v1.PUT("/products/:id", adminOnly, productsH.Update)
		v1.DELETE("/products/:id", adminOnly, productsH.Delete)
		v1.PATCH("/products/:id/stock", adminOnly, inventoryH.AdjustStock)

		v1.GET("/dashboard/stats", anyRole, dashboardH.Stats)

		inv := v1.Group("/inventory", anyRole)
		{
			inv.GET("/alerts", inventoryH.Alerts)
			inv.GET("/movements", inventoryH.Movements)
		}

		reports := v1.Group("/reports", adminOnly)
		{
			reports.GET("/summary", reportsH.Summary)
			reports.GET("/summary/pdf", reportsH.SummaryPDF)
			reports.GET("/stock", reportsH.Stock)
			reports.GET("/stock/pdf", reportsH.StockPDF)
			reports.GET("/stock/csv", reportsH.StockCSV)
		}

		v1.GET("/settings", anyRole, settingsH.Get)
		v1.PUT("/settings", adminOnly, settingsH.Update)

		v1.GET("/events", anyRole, eventsH.Stream)
	}

	return r
}
