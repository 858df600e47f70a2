package router

import (
	"context"
	"crypto/subtle"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/keyauth"

	"resume-parser-go/internal/api/handler"
	"resume-parser-go/internal/config"
)

// RegisterRoutes 注册API路由
// 配置了API Key时，除健康检查外所有接口走keyauth鉴权
func RegisterRoutes(h *server.Hertz, cfg *config.Config, resumeHandler *handler.ResumeHandler) {
	api := h.Group("/api/v1")

	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})

	resumes := api.Group("/resumes")
	if cfg.API.Key != "" {
		resumes.Use(keyauth.New(
			keyauth.WithKeyLookUp("header:X-API-Key", ""),
			keyauth.WithValidator(func(c context.Context, ctx *app.RequestContext, key string) (bool, error) {
				return subtle.ConstantTimeCompare([]byte(key), []byte(cfg.API.Key)) == 1, nil
			}),
			keyauth.WithErrorHandler(func(c context.Context, ctx *app.RequestContext, err error) {
				ctx.JSON(consts.StatusUnauthorized, utils.H{"error": "无效的API Key"})
				ctx.Abort()
			}),
		))
	}

	resumes.POST("/parse", resumeHandler.HandleParse)
	resumes.GET("/:uuid", resumeHandler.HandleGetRecord)
}
