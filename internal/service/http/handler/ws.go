package handler

import (
	"net/http"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/logs"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/service/http/handler/response"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The realtime feed is public, same as the REST surface.
	CheckOrigin: func(r *http.Request) bool { return true },
}

func Realtime(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logs.Logger.Warn().Err(err).Msg("websocket upgrade failed")
		c.JSON(http.StatusBadRequest, response.Error(response.MsgInternalError))
		return
	}
	broadcastHub.Subscribe(conn)
}
