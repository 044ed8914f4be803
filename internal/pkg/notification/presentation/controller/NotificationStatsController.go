package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhikr1871/E-Cell/internal/pkg/notification/application/usecase"
)

// NotificationStatsController serves GET /user/:userId/stats.
type NotificationStatsController struct {
	Stats *usecase.NotificationStatsUseCase
}

func NewNotificationStatsController(stats *usecase.NotificationStatsUseCase) *NotificationStatsController {
	return &NotificationStatsController{Stats: stats}
}

func (ctl *NotificationStatsController) Handle(c *gin.Context) {
	stats, err := ctl.Stats.Execute(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
