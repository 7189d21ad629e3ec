package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"preview-tracker/internal/api/handler"
	"preview-tracker/internal/api/middleware"
	"preview-tracker/internal/pkg/config"
	"preview-tracker/internal/pkg/database"
	"preview-tracker/internal/pkg/logger"
	"preview-tracker/internal/repository"
	"preview-tracker/internal/service"
)

const healthTimeout = 2 * time.Second

// Setup 设置路由
func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())

	// 健康检查（含数据库连通性）
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := database.Ping(ctx, db); err != nil {
			logger.Warn("健康检查失败", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 初始化Repository
	previewRepo := repository.NewPreviewRepository(db)

	// 初始化Service
	previewService := service.NewPreviewService(previewRepo)

	// 初始化Handler
	previewHandler := handler.NewPreviewHandler(previewService)

	api := r.Group("/api")
	{
		// 预览环境（由 CI 调用，无需认证）
		previews := api.Group("/previews")
		{
			previews.POST("", previewHandler.Register)      // 注册或更新（按 build_id upsert）
			previews.PATCH("", previewHandler.UpdateStatus) // 更新状态
			previews.GET("", previewHandler.List)           // 列表查询（按创建时间倒序）
		}
	}

	return r
}
