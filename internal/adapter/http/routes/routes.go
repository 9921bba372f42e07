package routes

import (
	"context"
	"fmt"
	"net/http"

	_ "etc_takeoffs/docs" // This will be auto-generated
	"etc_takeoffs/internal/adapter/http/handlers"
	repository2 "etc_takeoffs/internal/adapter/persistence/repository"
	"etc_takeoffs/internal/domain/catalog"
	"etc_takeoffs/internal/infrastructure/config"
	"etc_takeoffs/internal/infrastructure/database"
	"etc_takeoffs/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Build connects to DynamoDB, wires the takeoff service and returns the HTTP
// server ready to ListenAndServe.
func Build(ctx context.Context, cfg *config.Config) (*http.Server, error) {
	takeoffHandler, err := getHandler(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      NewRouter(zap.L(), takeoffHandler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, nil
}

// NewRouter registers middlewares, swagger and the /v1 routes.
func NewRouter(logger *zap.Logger, takeoffHandler *handlers.TakeoffHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTakeoffRoutes(v1, takeoffHandler)
	return router
}

func getHandler(ctx context.Context, cfg *config.Config) (*handlers.TakeoffHandler, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	takeoffRepo := repository2.NewTakeoffDynamoRepository(ddb, cfg.Tables.Takeoffs, cfg.Tables.Cancellations)
	requestRepo := repository2.NewFabricationRequestDynamoRepository(ddb, cfg.Tables.FabricationRequests)
	workOrderRepo := repository2.NewWorkOrderDynamoRepository(ddb, cfg.Tables.WorkOrders)
	reservations := repository2.NewEquipmentReservationDynamoRepository(ddb, cfg.Tables.EquipmentReservations)

	takeoffUseCase := usecase.NewTakeoffUseCase(takeoffRepo, requestRepo, workOrderRepo, reservations, cat)
	return handlers.NewTakeoffHandler(takeoffUseCase), nil
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(requestID())
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("[takeoff][http] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
