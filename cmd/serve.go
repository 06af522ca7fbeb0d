package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jochebedafua/icd-diagnosis-api/docs"
	"github.com/jochebedafua/icd-diagnosis-api/internal/config"
	"github.com/jochebedafua/icd-diagnosis-api/internal/database"
	"github.com/jochebedafua/icd-diagnosis-api/internal/handlers"
	"github.com/jochebedafua/icd-diagnosis-api/internal/repository"
	"github.com/jochebedafua/icd-diagnosis-api/internal/routes"
	"github.com/jochebedafua/icd-diagnosis-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the diagnosis code HTTP API",
	Long:  `Start the HTTP server exposing CRUD, filtering, search, and pagination over the diagnosis code catalog.`,
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	log := setupLogger()
	loadEnvFile(log)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	codeRepo := repository.NewCodeRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	codeService := services.NewCodeService(codeRepo, categoryRepo, log)
	categoryService := services.NewCategoryService(categoryRepo, log)
	codeHandler := handlers.NewCodeHandler(codeService, cfg.Pagination, log)
	categoryHandler := handlers.NewCategoryHandler(categoryService, cfg.Pagination, log)

	app := fiber.New(fiber.Config{
		AppName:      "ICD Diagnosis API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, codeHandler, categoryHandler)

	go gracefulShutdown(app, log)

	log.Infof("ICD Diagnosis API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		MaxAge:       86400,
	}))
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "icd-diagnosis-api",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}
