package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhikr1871/E-Cell/internal/pkg/notification/application/usecase"
)

// MarkNotificationReadController serves PATCH /read/:chatboxId/:notifId.
type MarkNotificationReadController struct {
	MarkRead *usecase.MarkNotificationReadUseCase
}

func NewMarkNotificationReadController(markRead *usecase.MarkNotificationReadUseCase) *MarkNotificationReadController {
	return &MarkNotificationReadController{MarkRead: markRead}
}

func (ctl *MarkNotificationReadController) Handle(c *gin.Context) {
	if err := ctl.MarkRead.Execute(c.Request.Context(), c.Param("notifId"), c.Param("chatboxId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
