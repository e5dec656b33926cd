package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/locey/BurnWin/api/v1"
	"github.com/locey/BurnWin/base/logger/xzap"
	"github.com/locey/BurnWin/service/svc"
)

const RequestIDHeader = "X-Request-Id"

func NewRouter(svcCtx *svc.ServerCtx) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog())
	r.Use(cors.New(corsConfig(svcCtx)))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	if svcCtx.Metrics != nil {
		r.GET("/metrics", gin.WrapH(svcCtx.Metrics.Handler()))
	}

	apiV1 := r.Group("/api/v1")
	loadV1(apiV1, svcCtx)
	return r
}

func loadV1(r *gin.RouterGroup, svcCtx *svc.ServerCtx) {
	tasks := r.Group("/tasks")
	{
		tasks.POST("/verify", v1.VerifyTaskHandler(svcCtx))
		tasks.POST("/open", v1.OpenTaskHandler(svcCtx))
		tasks.GET("/visit/:campaign/:task", v1.VisitTaskHandler(svcCtx))
	}

	campaigns := r.Group("/campaigns/:campaign")
	{
		campaigns.GET("/tasks", v1.GetCampaignTasksHandler(svcCtx))
		campaigns.GET("/progress/:address", v1.GetProgressHandler(svcCtx))
		campaigns.GET("/eligibility", v1.GetEligibilityHandler(svcCtx))
		campaigns.GET("/eligibility/:address", v1.GetWalletEligibilityHandler(svcCtx))
	}
}

func corsConfig(svcCtx *svc.ServerCtx) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, RequestIDHeader)
	cfg.ExposeHeaders = []string{RequestIDHeader}
	if svcCtx.C != nil && len(svcCtx.C.Api.CorsOrigins) > 0 {
		cfg.AllowOrigins = svcCtx.C.Api.CorsOrigins
	} else {
		cfg.AllowAllOrigins = true
	}
	return cfg
}

// requestID 为每个请求注入 request id，并写入日志上下文
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		ctx := xzap.NewContext(c.Request.Context(), zap.String(xzap.RequestIDField, id))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		xzap.WithContext(c.Request.Context()).Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
