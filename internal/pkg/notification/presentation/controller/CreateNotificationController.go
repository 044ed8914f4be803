package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhikr1871/E-Cell/internal/pkg/notification/application/usecase"
	notification "github.com/abhikr1871/E-Cell/internal/pkg/notification/domain"
)

type createNotificationRequest struct {
	ChatboxID string `json:"chatboxId"`
	ToUserID  string `json:"toUserId"`
	FromUser  string `json:"fromUserId"`
	Message   string `json:"message"`
	NotifType string `json:"notifType"`
	Priority  string `json:"priority"`
}

// CreateNotificationController serves POST /create for system and alert
// notifications that do not originate from a chat message.
type CreateNotificationController struct {
	Send *usecase.SendNotificationUseCase
}

func NewCreateNotificationController(send *usecase.SendNotificationUseCase) *CreateNotificationController {
	return &CreateNotificationController{Send: send}
}

func (ctl *CreateNotificationController) Handle(c *gin.Context) {
	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	saved, err := ctl.Send.Execute(c.Request.Context(), usecase.SendNotificationInput{
		ChatboxID: req.ChatboxID,
		ToUser:    req.ToUserID,
		FromUser:  req.FromUser,
		Message:   req.Message,
		Type:      notification.Type(req.NotifType),
		Priority:  notification.Priority(req.Priority),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toView(*saved))
}
