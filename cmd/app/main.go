package main

import (
	"fmt"
	"log/slog"
	"os"

	"parcelhub/cmd"
	httpadapter "parcelhub/internal/adapters/in/http"
	"parcelhub/internal/adapters/out/postgres/feedbackrepo"
	"parcelhub/internal/adapters/out/postgres/notificationrepo"
	"parcelhub/internal/adapters/out/postgres/parcelrepo"
	"parcelhub/internal/adapters/out/postgres/sessionrepo"
	"parcelhub/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.CreateRemindOverdueParcelsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:       goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:   goDotEnvVariable("REDIS_PASSWORD"),
		SessionCacheTTL: goDotEnvVariable("SESSION_CACHE_TTL"),
		AmqpURL:         goDotEnvVariable("AMQP_URL"),
		AmqpExchange:    goDotEnvVariable("AMQP_EXCHANGE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&notificationrepo.NotificationDTO{},
		&feedbackrepo.FeedbackDTO{},
		&sessionrepo.SessionDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateParcelCommandHandler(),
		app.CreateDeliverParcelCommandHandler(),
		app.CreateDeleteParcelCommandHandler(),
		app.CreateMarkNotificationReadCommandHandler(),
		app.CreateSubmitFeedbackCommandHandler(),
		app.CreateGetParcelBoardQueryHandler(),
		app.CreateGetMyParcelsQueryHandler(),
		app.CreateGetMyDeliveriesQueryHandler(),
		app.CreateGetNotificationsQueryHandler(),
		app.CreateGetFeedbackQueryHandler(),
		app.IdentityResolver(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
