package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhikr1871/E-Cell/internal/pkg/notification/application/usecase"
	notification "github.com/abhikr1871/E-Cell/internal/pkg/notification/domain"
)

// notificationView is the REST shape of a notification entry.
type notificationView struct {
	NotifID   string                `json:"notifId"`
	ChatboxID string                `json:"chatboxId"`
	ToUser    string                `json:"toUserId"`
	FromUser  string                `json:"fromUserId"`
	Message   string                `json:"message"`
	Type      notification.Type     `json:"notifType"`
	Read      bool                  `json:"read"`
	CreatedAt string                `json:"timestamp"`
	Metadata  notification.Metadata `json:"metadata"`
}

func toView(n notification.Notification) notificationView {
	return notificationView{
		NotifID:   n.NotifID,
		ChatboxID: n.ChatboxID,
		ToUser:    n.ToUser,
		FromUser:  n.FromUser,
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Metadata:  n.Metadata,
	}
}

// ListUnreadNotificationsController serves GET /user/:userId: all unread
// notifications addressed to the user, newest first.
type ListUnreadNotificationsController struct {
	List *usecase.ListUnreadNotificationsUseCase
}

func NewListUnreadNotificationsController(list *usecase.ListUnreadNotificationsUseCase) *ListUnreadNotificationsController {
	return &ListUnreadNotificationsController{List: list}
}

func (ctl *ListUnreadNotificationsController) Handle(c *gin.Context) {
	items, err := ctl.List.Execute(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]notificationView, 0, len(items))
	for _, n := range items {
		views = append(views, toView(n))
	}
	c.JSON(http.StatusOK, gin.H{"notifications": views})
}
