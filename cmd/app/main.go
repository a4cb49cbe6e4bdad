package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rentmoto/cmd"
	httpin "rentmoto/internal/adapters/in/http"
	"rentmoto/internal/adapters/out/disk"
	"rentmoto/internal/adapters/out/mqttbus"
	"rentmoto/internal/adapters/out/postgres/motorepo"
	"rentmoto/internal/adapters/out/postgres/rentalrepo"
	"rentmoto/internal/adapters/out/postgres/riderrepo"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	publisher, err := mqttbus.NewPublisher(configs.MQTTBroker, configs.MQTTClientID)
	if err != nil {
		log.Fatalf("Error connecting to MQTT broker: %v", err)
	}
	defer publisher.Close()

	storage, err := disk.NewPhotoStorage(configs.StorageRoot)
	if err != nil {
		log.Fatalf("Error preparing photo storage: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, storage, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		MQTTBroker:          goDotEnvVariable("MQTT_BROKER"),
		MQTTClientID:        goDotEnvVariable("MQTT_CLIENT_ID"),
		MQTTMotorcycleTopic: goDotEnvVariable("MQTT_MOTORCYCLE_TOPIC"),
		StorageRoot:         goDotEnvVariable("STORAGE_ROOT"),
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError maps driver errors to gorm sentinels such as
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&motorepo.MotorcycleDTO{},
		&riderrepo.RiderDTO{},
		&rentalrepo.RentalDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateRegisterMotorcycleCommandHandler(),
		app.CreateRenameMotorcycleCommandHandler(),
		app.CreateChangeMotorcyclePlateCommandHandler(),
		app.CreateDeleteMotorcycleCommandHandler(),
		app.CreateRegisterRiderCommandHandler(),
		app.CreateUpdateRiderCNHPhotoCommandHandler(),
		app.CreateCreateRentalCommandHandler(),
		app.CreateReturnRentalCommandHandler(),
		app.CreateGetMotorcyclesQueryHandler(),
		app.CreateGetMotorcycleQueryHandler(),
		app.CreateGetRentalQueryHandler(),
		app.CreatePreviewReturnQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
