package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/abstraxion/abstraxion-dashboard/apps/dashboard/handlers"
	"github.com/abstraxion/abstraxion-dashboard/apps/dashboard/templates"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/client/auth"
	awsclient "github.com/abstraxion/abstraxion-dashboard/libs/go/client/aws"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/client/graphql"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/constants"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/helpers"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/interfaces"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/middleware"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/services"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	healthHandler  *handlers.HealthHandler
	modalHandler   *handlers.ModalHandler
	grantHandler   *handlers.GrantHandler
	sessionHandler *handlers.SessionHandler

	// Clients
	sessionVerifier interfaces.SessionVerifier
	eventDispatcher *services.EventDispatcher

	// Services
	commonServices *handlers.CommonServices

	healthChecks = map[string]handlers.HealthCheck{}

	secureCookies bool
)

// Shutdown flushes buffered grant events
func Shutdown() {
	if eventDispatcher != nil {
		eventDispatcher.Stop()
	}
}

func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(stage)
	logger.Info("Initializing dashboard handlers for stage", zap.String("stage", stage))

	ctx := context.Background()
	deployed := stage == helpers.StageProd || stage == helpers.StageDev
	secureCookies = stage != helpers.StageLocal

	// --- Initialize AWS Secrets Manager Client ---
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// --- Network ---
	mainnet := helpers.IsMainnet(helpers.GetEnv("DASHBOARD_NETWORK", constants.TestnetNetwork))
	logger.Info("Dashboard network", zap.String("network", helpers.NetworkLabel(mainnet)))

	// --- Wallet Connection Store ---
	connections := initConnectionStore(ctx, secretsClient, stage)

	// --- Account Indexer ---
	var indexer interfaces.AccountIndexer
	indexerURL := os.Getenv("INDEXER_GRAPHQL_URL")
	if indexerURL == "" {
		logger.Warn("INDEXER_GRAPHQL_URL not set, smart accounts will not be resolved")
	} else {
		indexer = graphql.NewIndexerClient(graphql.Config{
			Endpoint: indexerURL,
			APIKey:   secretsClient.GetOptionalSecretString(ctx, "INDEXER_API_KEY_ARN", "INDEXER_API_KEY"),
			Timeout:  helpers.GetEnvDuration("INDEXER_TIMEOUT", 10*time.Second),
		})
	}

	// --- Session Verification ---
	jwksEndpoint := secretsClient.GetOptionalSecretString(ctx, "AUTH_JWKS_ENDPOINT_ARN", "AUTH_JWKS_ENDPOINT")
	if jwksEndpoint == "" {
		if stage == helpers.StageProd {
			logger.Fatal("AUTH_JWKS_ENDPOINT is required in prod")
		}
		logger.Warn("AUTH_JWKS_ENDPOINT not set, session tokens will be ignored")
	} else {
		authClient, err := auth.NewAuthClient(auth.Config{
			JWKSURL:  jwksEndpoint,
			Issuer:   os.Getenv("AUTH_ISSUER"),
			Audience: os.Getenv("AUTH_AUDIENCE"),
		})
		if err != nil {
			logger.Fatal("Unable to create auth client", zap.Error(err))
		}
		sessionVerifier = authClient
	}

	// --- Grant Event Publisher ---
	var publisher interfaces.EventPublisher
	if queueURL := os.Getenv("GRANT_EVENTS_QUEUE_URL"); queueURL != "" {
		sqsPublisher, err := awsclient.NewSQSPublisher(ctx, queueURL)
		if err != nil {
			logger.Fatal("Unable to create grant event publisher", zap.Error(err))
		}
		eventDispatcher = services.NewEventDispatcher(sqsPublisher, services.EventDispatcherConfig{
			WorkerCount: helpers.GetEnvInt("GRANT_EVENT_WORKERS", 2),
			BufferSize:  helpers.GetEnvInt("GRANT_EVENT_BUFFER", 100),
		})
		eventDispatcher.Start()
		publisher = eventDispatcher
		healthChecks["grant_events"] = func(context.Context) error {
			if eventDispatcher.CircuitOpen() {
				return fmt.Errorf("publishing paused with %d events pending", eventDispatcher.Pending())
			}
			return nil
		}
	} else if deployed {
		logger.Warn("GRANT_EVENTS_QUEUE_URL not set, grant events will not be published")
	}

	// --- Services ---
	connectService := services.NewConnectService(connections, indexer, services.ConnectServiceConfig{
		WalletConnectBaseURL: helpers.GetEnv("WALLET_CONNECT_BASE_URL", "https://dashboard.burnt.com/connect"),
		AddressPrefix:        constants.XionBech32Prefix,
	})
	modalService := services.NewModalService(connectService, services.ModalServiceConfig{
		Mainnet: mainnet,
	})
	grantService := services.NewGrantService(connectService, publisher, services.GrantServiceConfig{
		TTL:             helpers.GetEnvDuration("GRANT_TTL", 0),
		MaxCalls:        helpers.GetEnvUint64("GRANT_MAX_CALLS", 0),
		AddressPrefix:   constants.XionBech32Prefix,
		BankDenomAmount: os.Getenv("GRANT_BANK_DENOM_AMOUNT"),
	})

	commonServices = handlers.NewCommonServices(handlers.CommonServicesConfig{
		ModalService:   modalService,
		GrantService:   grantService,
		ConnectService: connectService,
		Mainnet:        mainnet,
		SecureCookies:  secureCookies,
		Logger:         logger.ForComponent(logger.ComponentServer),
	})

	tmpl, err := templates.Parse()
	if err != nil {
		logger.Fatal("Unable to compile dashboard templates", zap.Error(err))
	}

	healthHandler = handlers.NewHealthHandler(helpers.NetworkLabel(mainnet), healthChecks)
	modalHandler = handlers.NewModalHandler(commonServices, tmpl)
	grantHandler = handlers.NewGrantHandler(commonServices)
	sessionHandler = handlers.NewSessionHandler(commonServices)
}

// initConnectionStore returns the Postgres store when a database is
// configured and the in-memory store otherwise. Deployed stages run several
// instances and therefore require a database.
func initConnectionStore(ctx context.Context, secretsClient *awsclient.SecretsManagerClient, stage string) interfaces.ConnectionStore {
	dsn := secretsClient.GetOptionalSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	if dsn == "" {
		if stage != helpers.StageLocal {
			logger.Fatal("DATABASE_URL is required outside local development")
		}
		logger.Warn("DATABASE_URL not set, wallet connections are kept in memory")
		return store.NewMemoryStore()
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = int32(helpers.GetEnvInt("DB_MAX_CONNS", 10))
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool with config", zap.Error(err))
	}

	healthChecks["database"] = dbpool.Ping

	pgStore := store.NewPostgresStore(dbpool)
	if err := pgStore.EnsureSchema(ctx); err != nil {
		logger.Fatal("Unable to create wallet_connections table", zap.Error(err))
	}
	return pgStore
}

func InitializeRoutes(router *gin.Engine) {
	// ClientIP reads forwarded headers only from these proxies. Without any,
	// rate limits key on the connection's remote address.
	if err := router.SetTrustedProxies(splitEnv("TRUSTED_PROXIES", nil)); err != nil {
		logger.Fatal("Invalid TRUSTED_PROXIES", zap.Error(err))
	}

	router.Use(configureCORS())

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	// Rate limits key on the client address, not the session cookie
	router.Use(middleware.SessionMiddleware(secureCookies))
	router.Use(middleware.DefaultRateLimiter.Middleware())

	isDevelopment := os.Getenv("GIN_MODE") != "release"
	router.Use(middleware.EnhancedLoggingMiddleware(isDevelopment))
	if !isDevelopment {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	router.Use(auth.AttachSession(sessionVerifier))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)
	router.GET("/health", healthHandler.Health)

	// Modal pages
	router.GET(handlers.PathModal, modalHandler.ShowModal)
	router.POST(handlers.PathClose, modalHandler.CloseModal)
	router.POST(handlers.PathOpen, modalHandler.OpenModal)
	router.POST(handlers.PathDisconnect, middleware.StrictRateLimiter.Middleware(), modalHandler.Disconnect)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/modal", modalHandler.GetModalState)

		grants := v1.Group("/grants")
		{
			grants.GET("/request", grantHandler.GetGrantRequest)
			grants.POST("/messages", middleware.StrictRateLimiter.Middleware(), grantHandler.BuildGrantMessages)
		}

		session := v1.Group("/session")
		session.Use(middleware.StrictRateLimiter.Middleware())
		{
			session.POST("/connect", sessionHandler.ConnectWallet)
			session.POST("/disconnect", sessionHandler.DisconnectWallet)
			session.GET("/connect-uri", sessionHandler.GetConnectURI)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "not found"})
	})
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = splitEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	corsConfig.AllowMethods = splitEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "OPTIONS"})
	corsConfig.AllowHeaders = splitEnv("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Authorization", middleware.CorrelationIDHeader})
	corsConfig.ExposeHeaders = splitEnv("CORS_EXPOSED_HEADERS", []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		middleware.CorrelationIDHeader,
	})

	// Session and wallet state live in cookies
	corsConfig.AllowCredentials = helpers.GetEnv("CORS_ALLOW_CREDENTIALS", "true") == "true"

	return cors.New(corsConfig)
}

// splitEnv reads a comma separated list from key, trimming each entry.
func splitEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	items := strings.Split(value, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}
