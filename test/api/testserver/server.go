//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"wastetrack/internal/cache"
	"wastetrack/internal/database"
	"wastetrack/internal/export"
	"wastetrack/internal/handler"
	"wastetrack/internal/queue"
	"wastetrack/internal/repository"
	"wastetrack/internal/router"
	"wastetrack/internal/service"
	"wastetrack/internal/storage"
	"wastetrack/pkg/auth"
	"wastetrack/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the session token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// TestReportWorkers is the report processor worker count used in tests.
	TestReportWorkers = 2
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo     repository.UserRepository
	TeamRepo     repository.TeamRepository
	WasteLogRepo repository.WasteLogRepository
	ReportRepo   repository.ReportRepository

	// Services (for direct service access in tests)
	AuthService      service.AuthServicer
	UserService      service.UserServicer
	TeamService      service.TeamServicer
	WasteLogService  service.WasteLogServicer
	AnalyticsService service.AnalyticsServicer
	ReportService    service.ReportServicer

	// Auth
	JWTManager *auth.JWTManager

	// Report pipeline
	ReportQueue     *queue.MemoryQueue
	ReportProcessor *queue.Processor
	csvExporter     export.Exporter
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Uniqueness constraints come from indexes, so tests need them too.
	if err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		_ = minioContainer.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	// Cache (real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)

	// Storage (real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	wasteLogRepo := repository.NewWasteLogRepository(mongoDB.Database)
	reportRepo := repository.NewReportRepository(mongoDB.Database)

	// Report export pipeline
	reportQueue := queue.NewMemoryQueue(100)
	csvExporter := export.NewCSVExporter(wasteLogRepo, s3Client)
	reportProcessor := queue.NewProcessor(reportQueue, csvExporter, reportRepo, TestReportWorkers)

	// Service layer
	authService := service.NewAuthService(userRepo, redisCache, jwtManager)
	userService := service.NewUserService(userRepo, teamRepo, redisCache)
	teamService := service.NewTeamService(teamRepo, userRepo, redisCache)
	wasteLogService := service.NewWasteLogService(wasteLogRepo, teamRepo, redisCache)
	analyticsService := service.NewAnalyticsService(wasteLogRepo, teamRepo, redisCache)
	reportService := service.NewReportService(reportRepo, teamRepo, reportQueue, s3Client)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, authService)
	teamHandler := handler.NewTeamHandler(teamService)
	wasteLogHandler := handler.NewWasteLogHandler(wasteLogService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	reportHandler := handler.NewReportHandler(reportService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:      authHandler,
		UserHandler:      userHandler,
		TeamHandler:      teamHandler,
		WasteLogHandler:  wasteLogHandler,
		AnalyticsHandler: analyticsHandler,
		ReportHandler:    reportHandler,
		Sessions:         authService,
		DB:               mongoPinger{mongoDB},
	})

	return &TestServer{
		Router:           r,
		MongoDB:          mongoDB,
		Redis:            redisContainer,
		MinIO:            minioContainer,
		UserRepo:         userRepo,
		TeamRepo:         teamRepo,
		WasteLogRepo:     wasteLogRepo,
		ReportRepo:       reportRepo,
		AuthService:      authService,
		UserService:      userService,
		TeamService:      teamService,
		WasteLogService:  wasteLogService,
		AnalyticsService: analyticsService,
		ReportService:    reportService,
		JWTManager:       jwtManager,
		ReportQueue:      reportQueue,
		ReportProcessor:  reportProcessor,
		csvExporter:      csvExporter,
	}, nil
}

// mongoPinger adapts the test Mongo container to the router's health check.
type mongoPinger struct {
	mc *testdb.MongoContainer
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.mc.Client.Ping(ctx, nil)
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// StartReportProcessor starts the report processor workers.
func (ts *TestServer) StartReportProcessor(ctx context.Context) {
	ts.ReportProcessor.Start(ctx)
}

// StopReportProcessor stops the report processor and resets the queue so
// subsequent tests can enqueue again.
func (ts *TestServer) StopReportProcessor() {
	ts.ReportProcessor.Stop()
	ts.ReportQueue.Reset()
	ts.ReportProcessor = queue.NewProcessor(ts.ReportQueue, ts.csvExporter, ts.ReportRepo, TestReportWorkers)
}
