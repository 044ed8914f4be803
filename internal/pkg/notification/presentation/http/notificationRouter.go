package http

import (
	"github.com/gin-gonic/gin"

	"github.com/abhikr1871/E-Cell/internal/pkg/notification/presentation/controller"
)

// Controllers aggregates the notification REST surface.
type Controllers struct {
	ListUnread *controller.ListUnreadNotificationsController
	Stats      *controller.NotificationStatsController
	Create     *controller.CreateNotificationController
	MarkRead   *controller.MarkNotificationReadController
	MarkAll    *controller.MarkAllNotificationsReadController
	Delete     *controller.DeleteNotificationController
	Cleanup    *controller.CleanupNotificationsController
}

// RegisterRoutes mounts the notification endpoints on rg.
func RegisterRoutes(rg *gin.RouterGroup, c Controllers) {
	rg.GET("/user/:userId", c.ListUnread.Handle)
	rg.GET("/user/:userId/stats", c.Stats.Handle)
	rg.POST("/create", c.Create.Handle)
	rg.PATCH("/read/:chatboxId/:notifId", c.MarkRead.Handle)
	rg.PATCH("/read-all/:chatboxId/:userId", c.MarkAll.Handle)
	rg.DELETE("/cleanup", c.Cleanup.Handle)
	rg.DELETE("/:chatboxId/:notifId", c.Delete.Handle)
}
