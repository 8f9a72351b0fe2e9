package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"ordering/cmd"
	adapterhttp "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	app.Start()
	defer app.Stop()

	statsJob := app.CreateOrderStatsJob()
	if err := statsJob.Start(); err != nil {
		log.Fatalf("Error starting order stats job: %v", err)
	}
	defer statsJob.Stop()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn("No .env file found, relying on process environment")
	}

	return cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "3003"),
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: envOrDefault("DB_PASSWORD", "postgres"),
		DBName:     envOrDefault("DB_NAME", "orders"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),

		UserServiceURL:         envOrDefault("USER_SERVICE_URL", "http://localhost:3001"),
		RestaurantServiceURL:   envOrDefault("RESTAURANT_SERVICE_URL", "http://localhost:3002"),
		NotificationServiceURL: envOrDefault("NOTIFICATION_SERVICE_URL", "http://localhost:3004"),

		DirectoryTimeoutSeconds: envIntOrDefault("DIRECTORY_TIMEOUT_SECONDS", 5),
		RejectUnavailableItems:  envBoolOrDefault("REJECT_UNAVAILABLE_ITEMS", false),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Warnf("Ignoring non-numeric %s=%q", key, value)
	}
	return fallback
}

func envBoolOrDefault(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
		log.Warnf("Ignoring non-boolean %s=%q", key, value)
	}
	return fallback
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = adapterhttp.NewValidator()

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
