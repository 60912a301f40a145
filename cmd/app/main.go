package main

import (
	"fmt"
	"log/slog"
	"os"

	"spktrack/cmd"
	spkhttp "spktrack/internal/adapters/in/http"
	"spktrack/internal/core/domain/model/stock"
	"spktrack/internal/core/domain/services"
	"spktrack/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddress,
		Password: configs.RedisPassword,
	})

	policy, err := stock.PolicyFromString(configs.StockPolicy)
	if err != nil {
		log.Fatalf("invalid STOCK_POLICY: %v", err)
	}
	inventory, err := services.NewInventoryLedger(policy)
	if err != nil {
		log.Fatalf("failed to create inventory ledger: %v", err)
	}

	app := cmd.NewCompositionRoot(gormDB, redisClient, inventory)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateReconcileOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RedisAddress:  goDotEnvVariable("REDIS_ADDRESS"),
		RedisPassword: goDotEnvVariable("REDIS_PASSWORD"),
		StockPolicy:   goDotEnvVariable("STOCK_POLICY"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := spkhttp.NewServer(
		app.CreateAdvanceBundleCommandHandler(),
		app.CreateDecomposeOrderCommandHandler(),
		app.CreateGetOrderProgressQueryHandler(),
		app.CreateGetProductionLogQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
