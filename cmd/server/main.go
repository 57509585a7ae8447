package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/plastpack/erp/internal/application/catalog"
	identityapp "github.com/plastpack/erp/internal/application/identity"
	partnerapp "github.com/plastpack/erp/internal/application/partner"
	reportapp "github.com/plastpack/erp/internal/application/report"
	tradeapp "github.com/plastpack/erp/internal/application/trade"
	"github.com/plastpack/erp/internal/infrastructure/auth"
	"github.com/plastpack/erp/internal/infrastructure/config"
	"github.com/plastpack/erp/internal/infrastructure/logger"
	"github.com/plastpack/erp/internal/infrastructure/persistence"
	"github.com/plastpack/erp/internal/interfaces/http/handler"
	"github.com/plastpack/erp/internal/interfaces/http/middleware"
	"github.com/plastpack/erp/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Token revocation prefers Redis; a single-node deployment without
	// Redis falls back to the in-memory blacklist.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		defer func() {
			_ = redisBlacklist.Close()
		}()
		log.Info("Redis connected")
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	salesRepo := persistence.NewGormSalesRepository(db.DB)
	productionRepo := persistence.NewGormProductionRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	stockLedger := persistence.NewGormStockLedger(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	productLocks := tradeapp.NewKeyedMutex()

	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	productService := catalogapp.NewProductService(productRepo, stockLedger)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	purchaseService := tradeapp.NewPurchaseService(purchaseRepo, supplierRepo, productRepo, txScope)
	salesService := tradeapp.NewSalesService(salesRepo, customerRepo, productRepo, txScope, productLocks)
	productionService := tradeapp.NewProductionService(productionRepo, productRepo, txScope, productLocks)
	reportService := reportapp.NewReportService(productRepo, purchaseRepo, salesRepo, stockLedger)
	dashboardService := reportapp.NewDashboardService(productRepo, purchaseRepo, salesRepo, productionRepo, stockLedger)

	// HTTP engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestLogger(log))

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuth(jwtConfig))

	// Routes
	r := router.NewRouter(engine)
	r.Register(handler.NewSystemHandler(db)).
		Register(handler.NewAuthHandler(authService)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewSupplierHandler(supplierService)).
		Register(handler.NewCustomerHandler(customerService)).
		Register(handler.NewPurchaseHandler(purchaseService)).
		Register(handler.NewSalesHandler(salesService)).
		Register(handler.NewProductionHandler(productionService)).
		Register(handler.NewReportHandler(reportService, dashboardService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
