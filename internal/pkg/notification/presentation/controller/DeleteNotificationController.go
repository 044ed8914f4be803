package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhikr1871/E-Cell/internal/pkg/notification/application/usecase"
)

// DeleteNotificationController serves DELETE /:chatboxId/:notifId.
type DeleteNotificationController struct {
	Delete *usecase.DeleteNotificationUseCase
}

func NewDeleteNotificationController(del *usecase.DeleteNotificationUseCase) *DeleteNotificationController {
	return &DeleteNotificationController{Delete: del}
}

func (ctl *DeleteNotificationController) Handle(c *gin.Context) {
	if err := ctl.Delete.Execute(c.Request.Context(), c.Param("notifId"), c.Param("chatboxId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
