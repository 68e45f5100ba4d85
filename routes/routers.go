package routes

import (
	"context"
	"net/http"

	"hostel/config"
	"hostel/controllers"
	middlewares "hostel/middleware"
	"hostel/models"
	"hostel/services"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type SetupOptions struct {
	DB                 *gorm.DB
	Redis              *redis.Client
	Melody             *melody.Melody
	AuthService        *services.AuthService
	RoomService        *services.RoomService
	MaintenanceService *services.MaintenanceService
	PaymentService     *services.PaymentService
}

func SetupRoutes(router *gin.Engine, opts SetupOptions) {

	authController := controllers.NewAuthController(opts.DB, opts.AuthService)
	userController := controllers.NewUserController(opts.DB, opts.RoomService, opts.AuthService)
	roomController := controllers.NewRoomController(opts.DB, opts.Redis)
	maintenanceController := controllers.NewMaintenanceController(opts.MaintenanceService)
	residentController := controllers.NewResidentController(opts.DB, opts.RoomService, opts.MaintenanceService, opts.PaymentService)
	paymentController := controllers.NewPaymentController(opts.PaymentService)
	notificationController := controllers.NewNotificationController(opts.DB)

	admin := middlewares.AuthMiddleware(models.RoleAdmin)
	staff := middlewares.AuthMiddleware(models.RoleAdmin, models.RoleStaff)
	anyUser := middlewares.AuthMiddleware()

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())
	v1.Use(middlewares.ErrorHandler())

	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/google", authController.AuthGoogle)
	v1.DELETE("/auth/logout", authController.Logout)
	v1.GET("/auth/me", anyUser, authController.Me)

	v1.GET("/users", staff, userController.GetUsers)
	v1.POST("/users", admin, userController.CreateUser)
	v1.PUT("/users/:id", admin, userController.UpdateUser)
	v1.DELETE("/users/:id", admin, userController.DeleteUser)
	v1.POST("/users/:id/assign-room", admin, userController.AssignRoom)
	v1.POST("/users/:id/auto-assign", admin, userController.AutoAssignRoom)
	v1.POST("/users/:id/check-in", staff, userController.CheckInUser)
	v1.POST("/users/:id/check-out", staff, userController.CheckOutUser)
	v1.POST("/rooms/recalculate-occupancy", admin, userController.RecalculateOccupancy)

	v1.GET("/rooms", staff, roomController.GetAllRooms)
	v1.GET("/rooms/:id", staff, roomController.GetRoomDetail)
	v1.POST("/rooms", admin, roomController.CreateRoom)
	v1.PUT("/rooms/:id", admin, roomController.UpdateRoom)
	v1.DELETE("/rooms/:id", admin, roomController.DeleteRoom)

	v1.GET("/maintenance", staff, maintenanceController.GetMaintenance)
	v1.GET("/maintenance/search", staff, maintenanceController.SearchMaintenance)
	v1.PUT("/maintenance/:id", staff, maintenanceController.UpdateMaintenance)
	v1.DELETE("/maintenance/:id", admin, maintenanceController.DeleteMaintenance)

	v1.GET("/residents/profile", anyUser, residentController.GetProfile)
	v1.PUT("/residents/profile", anyUser, residentController.UpdateProfile)
	v1.GET("/residents/maintenance", anyUser, residentController.GetMyMaintenance)
	v1.POST("/residents/maintenance", anyUser, residentController.CreateMaintenance)
	v1.GET("/residents/payments", anyUser, residentController.GetMyPayments)
	v1.GET("/residents/search", staff, residentController.SearchResident)

	v1.GET("/payments", staff, paymentController.GetPayments)
	v1.POST("/payments", staff, paymentController.CreatePayment)
	v1.PUT("/payments/:id", staff, paymentController.UpdatePayment)
	v1.DELETE("/payments/:id", admin, paymentController.DeletePayment)
	v1.GET("/payments/summary/monthly", staff, paymentController.MonthlySummary)
	v1.POST("/payments/create-checkout-session", anyUser, paymentController.CreateCheckoutSession)
	v1.POST("/payments/checkout-complete", anyUser, paymentController.CheckoutComplete)
	v1.POST("/payments/complete-latest", anyUser, paymentController.CompleteLatest)

	v1.GET("/notifications", anyUser, notificationController.GetNotifications)
	v1.PUT("/notifications/:id/read", anyUser, notificationController.MarkRead)

	v1.POST("/img/upload", staff, func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "hostel"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})

	v1.POST("/img/multi-upload", staff, func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "hostel"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"urls":    urls,
		})
	})

	v1.GET("/test-broadcast", admin, func(c *gin.Context) {
		opts.Melody.Broadcast([]byte("Broadcast test from backend"))
		c.String(http.StatusOK, "Broadcast message sent!")
	})
}
