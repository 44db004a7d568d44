package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-purchase-tracker/internal/auth"
	"go-purchase-tracker/internal/config"
	"go-purchase-tracker/internal/handler"
	"go-purchase-tracker/internal/middleware"
	"go-purchase-tracker/internal/model"
	"go-purchase-tracker/internal/repository"
	"go-purchase-tracker/internal/service"
	"go-purchase-tracker/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Config (reads .env when present)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 2. Setup Database
	db := database.ConnectDB(cfg.Database)
	db.AutoMigrate(&model.Account{}, &model.Privilege{}, &model.Purchase{})
	if err := database.InstallProcedures(db); err != nil {
		log.Fatal("Failed to install stored procedures: ", err)
	}

	// 3. Seed default privileges and bootstrap account
	seedPrivilegesAndAccount(db, cfg.Auth.StaticAccountID)

	// 4. Dependency Injection (Wiring Layers)
	purchaseRepo := repository.NewPurchaseRepo(db)
	accountRepo := repository.NewAccountRepo(db)

	purchaseService := service.NewPurchaseService(purchaseRepo)
	authService := service.NewAuthService(accountRepo)

	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	authHandler := handler.NewAuthHandler(authService)

	var authenticator auth.Authenticator
	if cfg.Auth.Mode == "token" {
		authenticator = auth.NewTokenAuthenticator(accountRepo)
	} else {
		authenticator = auth.NewStaticAuthenticator(cfg.Auth.StaticAccountID)
	}

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Purchase Tracker v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	internal := api.Group("/internal", middleware.RequireAuth(authenticator))

	internal.Get("/purchase", middleware.RequirePrivilege(model.PrivPurchaseRead), purchaseHandler.List)
	internal.Get("/purchase/:id", middleware.RequirePrivilege(model.PrivPurchaseRead), purchaseHandler.Get)
	internal.Post("/purchase", middleware.RequirePrivilege(model.PrivPurchaseCreate), purchaseHandler.Create)
	internal.Put("/purchase/:id", middleware.RequirePrivilege(model.PrivPurchaseUpdate), purchaseHandler.Update)
	internal.Delete("/purchase/:id", middleware.RequirePrivilege(model.PrivPurchaseDelete), purchaseHandler.Delete)

	// Unmatched routes
	app.Use(handler.NotFoundHandler)

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedPrivilegesAndAccount creates the purchase privileges and a bootstrap
// account holding all of them if they don't exist yet.
func seedPrivilegesAndAccount(db *gorm.DB, staticAccountID int64) {
	privilegeRepo := repository.NewPrivilegeRepo(db)
	accountRepo := repository.NewAccountRepo(db)

	if err := privilegeRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed privileges: %v", err)
	}

	if _, err := accountRepo.FindByID(staticAccountID); err == nil {
		return
	}

	allPrivileges, _ := privilegeRepo.FindAll()

	account := &model.Account{
		ID:         staticAccountID,
		Email:      "admin@example.com",
		IsActive:   true,
		Privileges: allPrivileges,
	}
	if err := account.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash account password: %v", err)
		return
	}

	if err := accountRepo.Create(account); err != nil {
		log.Printf("Warning: Failed to create bootstrap account: %v", err)
	} else {
		log.Println("Bootstrap account created: admin@example.com / admin123")
	}
}
