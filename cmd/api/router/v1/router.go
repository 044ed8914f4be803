package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	chathttp "github.com/abhikr1871/E-Cell/internal/pkg/chat/presentation/http"
	notifhttp "github.com/abhikr1871/E-Cell/internal/pkg/notification/presentation/http"
)

// RegisterRoutes mounts the full API surface: a health probe plus the chat
// and notification groups under /api.
func RegisterRoutes(engine *gin.Engine, chat chathttp.Controllers, notif notifhttp.Controllers) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	chathttp.RegisterRoutes(api.Group("/chat"), chat)
	notifhttp.RegisterRoutes(api.Group("/notifications"), notif)
}
