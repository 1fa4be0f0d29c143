package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins; rely on JWT auth.
		return true
	},
}

// AdminHandler upgrades an authenticated admin request to the live feed.
// Authorization is done by the route's middleware.
func AdminHandler(hub *AdminHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			hub.log.Debug("ws: upgrade failed", zap.Error(err))
			return
		}
		client := newAdminClient(hub, conn)
		select {
		case hub.register <- client:
		case <-hub.stop:
			conn.Close()
			return
		}

		go client.writePump()
		client.readPump()
	}
}
