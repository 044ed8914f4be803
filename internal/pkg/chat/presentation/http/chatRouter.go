package http

import (
	"github.com/gin-gonic/gin"

	"github.com/abhikr1871/E-Cell/internal/pkg/chat/presentation/controller"
)

// Controllers aggregates the chat surface: the websocket session endpoint
// plus the REST read/read-mark endpoints.
type Controllers struct {
	Socket    *controller.ChatSocketController
	History   *controller.GetChatHistoryController
	ChatboxID *controller.GetChatboxIDController
	UserChats *controller.ListUserChatsController
	Unread    *controller.UnreadCountController
	MarkAll   *controller.MarkAllMessagesReadController
}

// RegisterRoutes mounts the chat endpoints on rg.
func RegisterRoutes(rg *gin.RouterGroup, c Controllers) {
	rg.GET("/ws", c.Socket.Handle)
	rg.GET("/messages/:chatboxId", c.History.Handle)
	rg.GET("/chatbox/:senderId/:receiverId", c.ChatboxID.Handle)
	rg.GET("/user/:userId/chats", c.UserChats.Handle)
	rg.GET("/user/:userId/unread-count", c.Unread.Handle)
	rg.PATCH("/chatbox/:chatboxId/mark-read/:userId", c.MarkAll.Handle)
}
