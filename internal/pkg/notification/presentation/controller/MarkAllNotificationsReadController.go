package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhikr1871/E-Cell/internal/pkg/notification/application/usecase"
)

// MarkAllNotificationsReadController serves PATCH /read-all/:chatboxId/:userId.
type MarkAllNotificationsReadController struct {
	MarkAll *usecase.MarkAllNotificationsReadUseCase
}

func NewMarkAllNotificationsReadController(markAll *usecase.MarkAllNotificationsReadUseCase) *MarkAllNotificationsReadController {
	return &MarkAllNotificationsReadController{MarkAll: markAll}
}

func (ctl *MarkAllNotificationsReadController) Handle(c *gin.Context) {
	updated, err := ctl.MarkAll.Execute(c.Request.Context(), c.Param("chatboxId"), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updatedCount": updated})
}
