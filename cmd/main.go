package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/deliverhub/wallet-ledger/internal/audit"
	"github.com/deliverhub/wallet-ledger/internal/handlers"
	"github.com/deliverhub/wallet-ledger/internal/jwt"
	"github.com/deliverhub/wallet-ledger/internal/locks"
	"github.com/deliverhub/wallet-ledger/internal/logger"
	"github.com/deliverhub/wallet-ledger/internal/middlewares"
	"github.com/deliverhub/wallet-ledger/internal/repositories"
	"github.com/deliverhub/wallet-ledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title wallet-ledger API
// @version 1.0.0
// @description Wallet ledger and withdrawal settlement engine for the operations console
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds all application, database, Redis, Kafka, logging, and JWT configuration.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	lockTTLSecond     int

	kafkaBrokers    string
	kafkaAuditTopic string

	jwtSecretKey string
	jwtExpSecond int
}

// parseConfig loads environment variables from a file and returns the configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "wallet_ledger")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if cfg.lockTTLSecond, err = strconv.Atoi(getEnv("LOCK_TTL_SECOND", "30")); err != nil {
		return
	}

	// Kafka config
	cfg.kafkaBrokers = getEnv("KAFKA_BROKERS", "localhost:9092")
	cfg.kafkaAuditTopic = getEnv("KAFKA_AUDIT_TOPIC", "wallet-audit")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for the audit topic
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(cfg.kafkaBrokers, ",")...),
		Topic:    cfg.kafkaAuditTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	tokener := jwt.New(cfg.jwtSecretKey, time.Duration(cfg.jwtExpSecond)*time.Second)

	// Initialize repositories
	runner := repositories.NewTxRunner(db)
	walletReadRepo := repositories.NewWalletReadRepository(db)
	walletWriteRepo := repositories.NewWalletWriteRepository(db)
	txWriteRepo := repositories.NewTransactionWriteRepository(db)
	txReadRepo := repositories.NewTransactionReadRepository(db)
	wdReadRepo := repositories.NewWithdrawalReadRepository(db)
	wdWriteRepo := repositories.NewWithdrawalWriteRepository(db)

	// Initialize domain collaborators
	locker := locks.NewRedisLocker(rdb, time.Duration(cfg.lockTTLSecond)*time.Second)
	auditor := audit.NewPublisher(kafkaWriter)

	// Initialize services
	processor := services.NewProcessor(walletWriteRepo, txWriteRepo, runner, locker, auditor)
	ledgerService := services.NewLedgerService(walletReadRepo, txReadRepo)
	withdrawalService := services.NewWithdrawalService(wdReadRepo, wdWriteRepo, processor, runner, locker, auditor)

	// Initialize handlers
	movementHandler := handlers.NewMovementHandler(processor, tokener)
	holdHandler := handlers.NewHoldHandler(processor, tokener)
	releaseHandler := handlers.NewReleaseHandler(processor, tokener)
	refundHandler := handlers.NewRefundHandler(processor, tokener)
	getWalletHandler := handlers.NewGetWalletHandler(ledgerService, tokener)
	reconcileHandler := handlers.NewReconcileHandler(ledgerService, tokener)
	listTransactionsHandler := handlers.NewListTransactionsHandler(ledgerService, tokener)
	submitWithdrawalHandler := handlers.NewSubmitWithdrawalHandler(withdrawalService, tokener)
	approveWithdrawalHandler := handlers.NewApproveWithdrawalHandler(withdrawalService, tokener)
	rejectWithdrawalHandler := handlers.NewRejectWithdrawalHandler(withdrawalService, tokener)
	advanceWithdrawalHandler := handlers.NewAdvanceWithdrawalHandler(withdrawalService, tokener)
	listWithdrawalsHandler := handlers.NewListWithdrawalsHandler(withdrawalService, tokener)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Admin routes behind JWT validation
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.AdminAuthMiddleware(tokener))

		handlers.RegisterMovementHandler(r, movementHandler)
		handlers.RegisterHoldHandler(r, holdHandler)
		handlers.RegisterReleaseHandler(r, releaseHandler)
		handlers.RegisterRefundHandler(r, refundHandler)
		handlers.RegisterWalletHandlers(r, getWalletHandler, reconcileHandler)
		handlers.RegisterTransactionsHandler(r, listTransactionsHandler)
		handlers.RegisterSubmitWithdrawalHandler(r, submitWithdrawalHandler)
		handlers.RegisterApproveWithdrawalHandler(r, approveWithdrawalHandler)
		handlers.RegisterRejectWithdrawalHandler(r, rejectWithdrawalHandler)
		handlers.RegisterAdvanceWithdrawalHandler(r, advanceWithdrawalHandler)
		handlers.RegisterListWithdrawalsHandler(r, listWithdrawalsHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
