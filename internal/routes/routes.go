package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/controllers"
	"asset-system/internal/repositories"
	"asset-system/internal/services"
	"asset-system/pkg/config"
	"asset-system/pkg/middleware"
	"asset-system/pkg/service"
)

// InitRouter monta toda a cadeia repositório → serviço → controller e
// registra as rotas. O grupo /api/auth fica aberto; o restante exige token.
func InitRouter(e *echo.Echo, pool *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config, logger *zap.Logger) {
	userRepo := repositories.NewUserRepository(pool)
	clientRepo := repositories.NewClientRepository(pool)
	assetRepo := repositories.NewAssetRepository(pool)
	associationRepo := repositories.NewAssociationRepository(pool)
	manufacturerRepo := repositories.NewManufacturerRepository(pool)
	statusRepo := repositories.NewStatusRepository(pool)
	planRepo := repositories.NewPlanRepository(pool)
	associationTypeRepo := repositories.NewAssociationTypeRepository(pool)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	clientService := services.NewClientService(clientRepo, logger)
	assetService := services.NewAssetService(assetRepo, logger)
	associationService := services.NewAssociationService(
		pool, associationRepo, assetRepo, clientRepo, cacheRepo, cfg.Cache.SummaryTTL, logger)
	selectionService := services.NewSelectionService(cacheRepo, cfg.Cache.SelectionTTL, logger)
	reportService := services.NewReportService(associationRepo, associationTypeRepo, planRepo, logger)
	manufacturerService := services.NewManufacturerService(manufacturerRepo, logger)
	statusService := services.NewStatusService(statusRepo, logger)
	planService := services.NewPlanService(planRepo, logger)
	associationTypeService := services.NewAssociationTypeService(associationTypeRepo, logger)

	authController := controllers.NewAuthController(authService, logger)
	clientController := controllers.NewClientController(clientService, logger)
	assetController := controllers.NewAssetController(assetService, logger)
	associationController := controllers.NewAssociationController(associationService, reportService, logger)
	selectionController := controllers.NewSelectionController(selectionService, logger)
	manufacturerController := controllers.NewManufacturerController(manufacturerService, logger)
	statusController := controllers.NewStatusController(statusService, logger)
	planController := controllers.NewPlanController(planService, logger)
	associationTypeController := controllers.NewAssociationTypeController(associationTypeService, logger)

	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	api := e.Group("/api")

	runAuthRouter(api, authController, authMW)

	secure := api.Group("", authMW.Auth)
	runClientRouter(secure, clientController)
	runAssetRouter(secure, assetController)
	runAssociationRouter(secure, associationController)
	runSelectionRouter(secure, selectionController)
	runDictionaryRouter(secure, manufacturerController, statusController, planController, associationTypeController)
}
