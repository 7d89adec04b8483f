package router

import (
	"github.com/RigelNana/arkvideo/handler"
	"github.com/RigelNana/arkvideo/middleware"
	metricsGin "github.com/RigelNana/arkvideo/pkg/metrics/gin"

	"github.com/gin-gonic/gin"
)

func Setup(videoHandler *handler.VideoHandler) *gin.Engine {
	r := gin.Default()
	r.Use(metricsGin.PrometheusMiddleware("arkvideo"))

	api := r.Group("/api")

	// 播放路径不要求凭证
	api.GET("/videos/:id", videoHandler.ServeVideo)
	api.GET("/videos/:id/thumbnail", videoHandler.ServeThumbnail)

	authed := api.Group("")
	authed.Use(middleware.JWTAuth())
	{
		authed.POST("/videos", videoHandler.CreateVideo)
		authed.GET("/videos", videoHandler.ListVideos)
		authed.GET("/videos/:id/info", videoHandler.GetVideoInfo)
		authed.POST("/videos/:id/upload", videoHandler.UploadVideo)
		authed.POST("/videos/:id/thumbnail", videoHandler.UploadThumbnail)
	}
	return r
}
