package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	chat "github.com/abhikr1871/E-Cell/internal/pkg/chat/domain"
)

// GetChatboxIDController serves GET /chatbox/:senderId/:receiverId and
// answers with the canonical conversation key for the pair. Pure computation;
// it does not create anything.
type GetChatboxIDController struct{}

func NewGetChatboxIDController() *GetChatboxIDController {
	return &GetChatboxIDController{}
}

func (ctl *GetChatboxIDController) Handle(c *gin.Context) {
	senderID := c.Param("senderId")
	receiverID := c.Param("receiverId")
	if senderID == "" || receiverID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "senderId and receiverId are required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chatboxId": chat.ChatboxID(senderID, receiverID)})
}
