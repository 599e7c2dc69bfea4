package http

import (
	"net/http"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/service/http/handler"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/service/http/middleware"
	"github.com/gin-gonic/gin"
)

func Serve(port string) {
	e := gin.New()
	initRouter(e)
	if err := e.Run(port); err != nil {
		panic(err)
	}
}

func initRouter(e *gin.Engine) {
	e.Use(gin.Recovery())
	e.Use(middleware.RequestLogger())
	e.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	e.POST("/generate-image", handler.GenerateImage)
	e.POST("/publish-image", handler.PublishImage)
	e.GET("/list-images", handler.ListImages)
	e.GET("/ws", handler.Realtime)
}
