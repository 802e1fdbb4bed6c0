package main

import (
	"log"
	"time"

	"victory-pos/internal/ai"
	"victory-pos/internal/auth"
	"victory-pos/internal/config"
	"victory-pos/internal/handlers"
	"victory-pos/internal/middleware"
	"victory-pos/internal/rbac"
	"victory-pos/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	storage, err := openStorage(cfg)
	if err != nil {
		log.Fatal(err)
	}

	st, err := store.New(storage)
	if err != nil {
		log.Fatal("Failed to open state store:", err)
	}

	api := handlers.New(st, auth.NewManager(cfg.JWTSecret), ai.NewAssistant(cfg.GeminiAPIKey))
	authMW := middleware.Authenticate(api.Auth)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", api.Login)

	if cfg.AllowRegistration {
		r.POST("/register", api.Register)
		log.Println("WARNING: Registration route is OPEN. Disable this in production!")
	}

	apiGroup := r.Group("/api")
	apiGroup.Use(authMW)
	{
		apiGroup.GET("/laptops", api.ListLaptops)
		apiGroup.GET("/laptops/scan/:barcode", api.ScanLaptop)
		apiGroup.POST("/checkout", api.Checkout)
		apiGroup.GET("/transactions", api.ListTransactions)
		apiGroup.GET("/transactions/:id/invoice", api.Invoice)
		apiGroup.GET("/reports/summary", api.Summary)
		apiGroup.GET("/reports/inventory", api.InventoryReport)
		apiGroup.GET("/reports/sales", api.SalesReport)
		apiGroup.POST("/ask", api.Ask)

		manage := apiGroup.Group("/")
		manage.Use(middleware.RequireCapability(rbac.ActionManageLaptops))
		{
			manage.POST("/laptops", api.AddLaptop)
			manage.PUT("/laptops/:id", api.UpdateLaptop)
			manage.POST("/laptops/:id/stock", api.AdjustStock)
		}

		owner := apiGroup.Group("/")
		owner.Use(middleware.RequireCapability(rbac.ActionDeleteLaptop))
		{
			owner.DELETE("/laptops/:id", api.DeleteLaptop)
		}

		backup := apiGroup.Group("/")
		backup.Use(middleware.RequireCapability(rbac.ActionExportBackup))
		{
			backup.GET("/backup", api.Backup)
		}

		admin := apiGroup.Group("/")
		admin.Use(middleware.RequireCapability(rbac.ActionManageUsers))
		{
			admin.GET("/users", api.ListUsers)
			admin.POST("/users", api.AddUser)
			admin.PUT("/users/:id", api.UpdateUser)
			admin.DELETE("/users/:id", api.DeleteUser)
		}
	}

	log.Println("Server starting on " + cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

// openStorage picks the snapshot backend: database row when DB_DSN is set,
// local file otherwise.
func openStorage(cfg config.Config) (store.Storage, error) {
	if cfg.DBDSN != "" {
		log.Println("Using database snapshot storage")
		return store.OpenGormStorage(cfg.DBDSN)
	}
	log.Println("Using file snapshot storage at " + cfg.StorePath)
	return store.NewFileStorage(cfg.StorePath), nil
}
