package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/config"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/handler"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/middleware"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/repository"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/service"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/pkg/auth"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/pkg/gemini"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// @title           Project X Device Catalog API
// @version         1.0
// @description     Device catalog backend: registration, login, JWT-gated browsing, filter/search/compare and AI purchase recommendations.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// ==================== Load Config ====================
	cfg := config.Load()
	log.Printf("🚀 Starting Project X API Server [env=%s]", cfg.App.Env)

	// ==================== Database (MongoDB) ====================
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Fatalf("❌ Failed to ping MongoDB: %v", err)
	}
	log.Println("✅ Connected to MongoDB")

	db := client.Database(cfg.Mongo.Database)

	// Unique email index backs the registration existence check against
	// concurrent duplicate registrations
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("users").Indexes().CreateOne(connectCtx, emailIndex); err != nil {
		log.Printf("⚠️  Index creation warning: %v", err)
	}

	// ==================== Initialize Layers ====================
	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	catalogService := service.NewCatalogService(deviceRepo)
	geminiService := gemini.NewService(cfg.Gemini.APIKey, cfg.Gemini.Model)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	deviceHandler := handler.NewDeviceHandler(catalogService)
	aiHandler := handler.NewAIHandler(geminiService)

	// ==================== Gin Router ====================
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Swagger configuration
	// Serve swagger.json at /docs/swagger.json to avoid conflict with /swagger/* wildcard
	router.StaticFile("/docs/swagger.json", "./docs/swagger.json")
	url := ginSwagger.URL("/docs/swagger.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// Global middleware
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins))
	router.Use(middleware.RequestID())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "projectx-api",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// ==================== API Routes ====================
	// Public routes
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	// The recommendation endpoint takes client-supplied specs and is public
	router.POST("/ai", aiHandler.Recommend)

	// Protected routes
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(jwtManager))
	{
		protected.GET("/protected", authHandler.Protected)
		protected.GET("/dashboard", deviceHandler.Dashboard)
		protected.POST("/product", deviceHandler.Product)
		protected.POST("/filter", deviceHandler.Filter)
		protected.POST("/search", deviceHandler.Search)
		protected.POST("/compare", deviceHandler.Compare)
	}

	// ==================== Start Server ====================
	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	log.Printf("🌐 Project X API running on http://0.0.0.0:%s", cfg.App.Port)
	log.Printf("📋 API docs: http://0.0.0.0:%s/swagger/index.html", cfg.App.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	// Give ongoing requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Printf("⚠️  MongoDB disconnect: %v", err)
	}
	log.Println("✅ Server exited gracefully")
}
