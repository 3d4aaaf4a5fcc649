package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/devcarkson/reserve-with-ease-backend/config"
	"github.com/devcarkson/reserve-with-ease-backend/controllers"
	"github.com/devcarkson/reserve-with-ease-backend/domain"
	"github.com/devcarkson/reserve-with-ease-backend/events"
	"github.com/devcarkson/reserve-with-ease-backend/middleware"
	"github.com/devcarkson/reserve-with-ease-backend/repositories"
	"github.com/devcarkson/reserve-with-ease-backend/services"
)

const reservationQueue = "reservation_events"

func main() {
	log.Println("Starting Reserve With Ease API...")

	// ============================================
	// 1. CONFIGURACIÓN - Leer variables de entorno
	// ============================================
	cfg := config.LoadConfig()
	log.Printf("Configuration loaded: Port=%s, DB=%s:%s/%s, MemcachedHost=%s",
		cfg.Port, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.MemcachedHost)

	// ============================================
	// 2. CONECTAR A MYSQL
	// ============================================
	// DSN = Data Source Name (string de conexión)
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	log.Println("Connecting to MySQL...")
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("MySQL connection established")

	// ============================================
	// 3. AUTO-MIGRAR LAS TABLAS
	// ============================================
	log.Println("Running migrations...")
	err = db.AutoMigrate(
		&domain.User{},
		&domain.EmailVerification{},
		&domain.PasswordReset{},
		&domain.WishlistItem{},
		&domain.Property{},
		&domain.Room{},
		&domain.Reservation{},
		&domain.Review{},
		&domain.ReviewHelpful{},
		&domain.Conversation{},
		&domain.Message{},
		&domain.Notification{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Tables created/updated")

	// ============================================
	// 4. CONECTAR A MONGODB (analytics de búsquedas)
	// ============================================
	// Si Mongo no está disponible, la API arranca igual
	// sin tracking de búsquedas
	var analyticsRepo repositories.SearchAnalyticsRepository
	mongoCtx, cancelMongo := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoURI))
	cancelMongo()
	if err != nil {
		log.Printf("Warning: failed to connect to MongoDB: %v (search tracking disabled)", err)
	} else {
		analyticsRepo = repositories.NewSearchAnalyticsRepository(mongoClient, cfg.MongoDatabase)
	}

	// ============================================
	// 5. INICIALIZAR CAPAS (Patrón MVC)
	// ============================================
	log.Println("Initializing repositories...")
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	cacheRepo := repositories.NewCacheRepository(cfg.MemcachedHost)

	// Publisher de eventos de reservas. Si RabbitMQ no está
	// disponible, la API arranca sin notificaciones.
	var publisher events.Publisher
	publisher, err = events.NewRabbitMQPublisher(cfg.RabbitMQURL, reservationQueue)
	if err != nil {
		log.Printf("Warning: failed to connect to RabbitMQ: %v (events disabled)", err)
		publisher = nil
	}

	log.Println("Initializing services...")
	userService := services.NewUserService(userRepo, tokenRepo, wishlistRepo, propertyRepo)
	propertyService := services.NewPropertyService(propertyRepo, roomRepo, reservationRepo)
	reservationService := services.NewReservationService(reservationRepo, roomRepo, propertyRepo, publisher)
	reviewService := services.NewReviewService(reviewRepo, reservationRepo, propertyRepo)
	messagingService := services.NewMessagingService(messageRepo, userRepo)
	searchService := services.NewSearchService(propertyRepo, cacheRepo, analyticsRepo)
	notificationService := services.NewNotificationService(notificationRepo)

	log.Println("Initializing controllers...")
	authController := controllers.NewAuthController(userService)
	propertyController := controllers.NewPropertyController(propertyService)
	reservationController := controllers.NewReservationController(reservationService)
	reviewController := controllers.NewReviewController(reviewService)
	messagingController := controllers.NewMessagingController(messagingService)
	searchController := controllers.NewSearchController(searchService)
	notificationController := controllers.NewNotificationController(notificationService)

	// ============================================
	// 6. CONSUMIDOR DE EVENTOS (notificaciones)
	// ============================================
	var consumer *events.NotificationConsumer
	if publisher != nil {
		consumer, err = events.NewNotificationConsumer(cfg.RabbitMQURL, reservationQueue, notificationService)
		if err != nil {
			log.Printf("Warning: failed to create notification consumer: %v", err)
		} else if err := consumer.Start(); err != nil {
			log.Printf("Error starting notification consumer: %v", err)
		} else {
			log.Println("Notification consumer started")
		}
	}

	// ============================================
	// 7. CONFIGURAR GIN (Framework web)
	// ============================================
	router := gin.Default()

	// CORS - Permitir requests desde el frontend
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// ============================================
	// 8. DEFINIR RUTAS (Endpoints)
	// ============================================
	log.Println("Configuring routes...")

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "reserve-with-ease-backend",
		})
	})

	api := router.Group("/api")

	// Rutas de autenticación
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/password-reset", authController.RequestPasswordReset)
		auth.POST("/password-reset/:token", authController.ResetPassword)
		auth.GET("/verify-email/:token", authController.VerifyEmail)

		authed := auth.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/profile", authController.GetProfile)
			authed.PUT("/profile", authController.UpdateProfile)
			authed.POST("/change-password", authController.ChangePassword)
			authed.GET("/wishlist", authController.GetWishlist)
			authed.POST("/wishlist", authController.AddToWishlist)
			authed.DELETE("/wishlist/:propertyID", authController.RemoveFromWishlist)
		}
	}

	// Rutas de propiedades y habitaciones
	properties := api.Group("/properties")
	{
		// Públicas
		properties.GET("", propertyController.ListProperties)
		properties.GET("/:id", propertyController.GetProperty)
		properties.GET("/:id/rooms", propertyController.ListRooms)
		properties.GET("/:id/availability", propertyController.GetAvailability)
		properties.GET("/:id/reviews", reviewController.ListReviews)

		// Solo dueños (o admin)
		owner := properties.Group("")
		owner.Use(middleware.AuthMiddleware(), middleware.OwnerMiddleware())
		{
			owner.POST("", propertyController.CreateProperty)
			owner.GET("/mine", propertyController.MyProperties)
			owner.PUT("/:id", propertyController.UpdateProperty)
			owner.DELETE("/:id", propertyController.DeleteProperty)
			owner.POST("/:id/rooms", propertyController.CreateRoom)
			owner.PUT("/rooms/:roomID", propertyController.UpdateRoom)
			owner.DELETE("/rooms/:roomID", propertyController.DeleteRoom)
		}

		// Reseñas requieren usuario autenticado
		authedProps := properties.Group("")
		authedProps.Use(middleware.AuthMiddleware())
		{
			authedProps.POST("/:id/reviews", reviewController.CreateReview)
		}
	}

	// Rutas de reservas (todas autenticadas)
	reservations := api.Group("/reservations")
	reservations.Use(middleware.AuthMiddleware())
	{
		reservations.POST("", reservationController.CreateReservation)
		reservations.GET("", reservationController.ListMyReservations)
		reservations.GET("/owner", reservationController.ListOwnerReservations)
		reservations.GET("/stats", reservationController.OwnerStats)
		reservations.GET("/availability", reservationController.CheckAvailability)
		reservations.GET("/:id", reservationController.GetReservation)
		reservations.POST("/:id/cancel", reservationController.CancelReservation)
		reservations.POST("/:id/confirm", reservationController.ConfirmReservation)
		reservations.POST("/:id/check-in", reservationController.CheckInReservation)
		reservations.POST("/:id/check-out", reservationController.CheckOutReservation)
	}

	// Rutas de reseñas
	reviews := api.Group("/reviews")
	{
		reviews.GET("/:id", reviewController.GetReview)

		authedReviews := reviews.Group("")
		authedReviews.Use(middleware.AuthMiddleware())
		{
			authedReviews.PUT("/:id", reviewController.UpdateReview)
			authedReviews.DELETE("/:id", reviewController.DeleteReview)
			authedReviews.POST("/:id/respond", reviewController.RespondReview)
			authedReviews.POST("/:id/helpful", reviewController.MarkHelpful)
		}
	}

	// Rutas de mensajería (todas autenticadas)
	messaging := api.Group("/messaging")
	messaging.Use(middleware.AuthMiddleware())
	{
		messaging.POST("/conversations", messagingController.StartConversation)
		messaging.GET("/conversations", messagingController.ListConversations)
		messaging.GET("/conversations/:id", messagingController.GetConversation)
		messaging.GET("/conversations/:id/messages", messagingController.ListMessages)
		messaging.POST("/conversations/:id/messages", messagingController.SendMessage)
		messaging.POST("/conversations/:id/read", messagingController.MarkRead)
		messaging.POST("/conversations/:id/archive", messagingController.ArchiveConversation)
	}

	// Rutas de búsqueda
	search := api.Group("/search")
	{
		search.GET("", searchController.Search)
		search.GET("/popular", searchController.PopularSearches)

		authedSearch := search.Group("")
		authedSearch.Use(middleware.AuthMiddleware())
		{
			authedSearch.POST("/track", searchController.TrackSearch)
		}
	}

	// Rutas de notificaciones (todas autenticadas)
	notifications := api.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", notificationController.ListNotifications)
		notifications.GET("/unread-count", notificationController.CountUnread)
		notifications.POST("/:id/read", notificationController.MarkRead)
		notifications.POST("/read-all", notificationController.MarkAllRead)
	}

	log.Println("Routes configured")

	// ============================================
	// 9. ARRANCAR EL SERVIDOR
	// ============================================
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Reserve With Ease API running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown con signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Reserve With Ease API...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	} else {
		log.Println("HTTP server shut down successfully")
	}

	if consumer != nil {
		if err := consumer.Close(); err != nil {
			log.Printf("Error closing notification consumer: %v", err)
		}
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			log.Printf("Error closing event publisher: %v", err)
		}
	}
	if mongoClient != nil {
		disconnectCtx, cancelDisconnect := context.WithTimeout(context.Background(), 5*time.Second)
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Printf("Error disconnecting MongoDB: %v", err)
		}
		cancelDisconnect()
	}

	log.Println("Reserve With Ease API shut down complete")
}
