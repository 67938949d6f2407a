package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/skyvoyage/booking-api/internal/activity"
	"github.com/skyvoyage/booking-api/internal/adapter/api/controller"
	"github.com/skyvoyage/booking-api/internal/adapter/api/route"
	"github.com/skyvoyage/booking-api/internal/adapter/repository"
	"github.com/skyvoyage/booking-api/internal/assistant"
	"github.com/skyvoyage/booking-api/internal/chatsession"
	"github.com/skyvoyage/booking-api/internal/infrastructure/database"
	"github.com/skyvoyage/booking-api/internal/infrastructure/flightdata"
	"github.com/skyvoyage/booking-api/internal/realtime"
	"github.com/skyvoyage/booking-api/internal/service"
	"github.com/skyvoyage/booking-api/pkg/auth"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	rdb    *redis.Client
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo com todas as dependências
// montadas
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar com o banco de dados: %w", err)
	}

	if err := database.RunMigrations(); err != nil {
		return nil, err
	}

	// Redis é opcional: sem REDIS_ADDR a presença degrada para os dados
	// locais do hub
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
	} else {
		log.Warn("REDIS_ADDR não configurado, presença em Redis desabilitada")
	}

	// Autenticação
	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Repositórios
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	sessionRepo := repository.NewChatSessionRepository(db)
	messageRepo := repository.NewChatMessageRepository(db)

	// Camada realtime
	hub := realtime.NewHub(log)
	presence := realtime.NewPresence(rdb, log)
	relay := realtime.NewRelay(messageRepo, hub, log)
	manager := chatsession.NewManager(sessionRepo, hub, log)

	// Serviços
	recorder := activity.NewRecorder(historyRepo, hub, log)
	dashboardService := service.NewDashboardService(bookingRepo, customerRepo, userRepo, historyRepo, log)
	aiAssistant := assistant.NewAssistant(bookingRepo, log)

	// Dados de voo
	flightClient := flightdata.NewFlightClient(log)
	weatherClient := flightdata.NewWeatherClient(log)
	airportCatalog := flightdata.NewAirportCatalog(os.Getenv("AIRPORTS_PATH"))

	// Controllers
	authController := controller.NewAuthController(userRepo, jwtService, recorder)
	customerController := controller.NewCustomerController(customerRepo, recorder)
	bookingController := controller.NewBookingController(bookingRepo, recorder)
	dashboardController := controller.NewDashboardController(dashboardService)
	historyController := controller.NewHistoryController(historyRepo)
	flightController := controller.NewFlightController(flightClient, weatherClient, airportCatalog)
	chatController := controller.NewChatController(sessionRepo, messageRepo, customerRepo, bookingRepo, hub, presence)
	chatbotController := controller.NewChatbotController(aiAssistant, log)

	wsHandler := realtime.NewHandler(hub, manager, relay, presence, jwtService, userRepo, dashboardService, log)

	// Router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.SetupAuthRoutes(api, authController, jwtService)
	route.SetupCustomerRoutes(api, customerController, jwtService)
	route.SetupBookingRoutes(api, bookingController, jwtService)
	route.SetupDashboardRoutes(api, dashboardController, historyController, jwtService)
	route.SetupFlightRoutes(api, flightController, jwtService)
	route.SetupChatRoutes(api, chatController, jwtService)
	route.SetupChatbotRoutes(api, chatbotController, jwtService)

	// Conexão realtime: autenticada depois do upgrade, pelo mesmo cookie de
	// sessão das páginas
	router.GET("/ws", wsHandler.Serve)

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &App{
		router: router,
		db:     db,
		rdb:    rdb,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP na porta configurada
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.rdb != nil {
		a.rdb.Close()
	}
}
