package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/wsgateway/internal/config"
	"github.com/polkiloo/wsgateway/internal/server/http/handlers"
	"github.com/polkiloo/wsgateway/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.GatewayFacade, logger *slog.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	// clients that join base URLs naively send "//buy"
	engine.RemoveExtraSlash = true

	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.CORS(cfg.CORSOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	credentialHandler := handlers.NewCredentialHandler(facade)
	withdrawalHandler := handlers.NewWithdrawalHandler(facade)

	engine.GET("/buy", credentialHandler.Buy)
	engine.POST("/withdrawals", withdrawalHandler.Create)
	engine.GET("/withdrawals/:id", withdrawalHandler.Status)

	return engine
}
