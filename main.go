package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"hostel/config"
	"hostel/jobs"
	"hostel/routes"
	"hostel/services"
	"hostel/services/logger"
	"hostel/services/notification"
	"hostel/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	notifier := services.NewNotifier(services.NotifierOptions{
		DB:        config.DB,
		Logger:    appLogger,
		Broadcast: notification.NewMelodyService(m),
	})

	authService := services.NewAuthService(services.AuthServiceOptions{DB: config.DB})
	roomService := services.NewRoomService(services.RoomServiceOptions{
		DB:       config.DB,
		Logger:   appLogger,
		Notifier: notifier,
		InvalidateCache: func(ctx context.Context) error {
			return services.DeleteKeysByPattern(ctx, config.RedisClient, "rooms:*")
		},
	})
	maintenanceService := services.NewMaintenanceService(services.MaintenanceServiceOptions{
		DB:     config.DB,
		Logger: appLogger,
	})
	paymentService := services.NewPaymentService(services.PaymentServiceOptions{
		DB:       config.DB,
		Logger:   appLogger,
		Notifier: notifier,
	})

	jobs.SetOccupancyRecalculator(roomService)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, routes.SetupOptions{
		DB:                 config.DB,
		Redis:              config.RedisClient,
		Melody:             m,
		AuthService:        authService,
		RoomService:        roomService,
		MaintenanceService: maintenanceService,
		PaymentService:     paymentService,
	})

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	utils.LogInfo("Server starting on port %s", port)
	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Server stopped: %v", err)
		log.Fatalf("Failed to start server: %v", err)
	}
}
