package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	queueport "github.com/abhikr1871/E-Cell/internal/infrastructure/queue/port"
	"github.com/abhikr1871/E-Cell/internal/pkg/notification/application/task"
)

// CleanupNotificationsController serves DELETE /cleanup. It enqueues the
// purge to the background worker instead of deleting inline; clients get the
// task id back.
type CleanupNotificationsController struct {
	Queue queueport.Client
	Log   *zap.Logger
}

func NewCleanupNotificationsController(queue queueport.Client, log *zap.Logger) *CleanupNotificationsController {
	return &CleanupNotificationsController{Queue: queue, Log: log}
}

func (ctl *CleanupNotificationsController) Handle(c *gin.Context) {
	if ctl.Queue == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "background queue not configured"})
		return
	}

	olderThanDays, _ := strconv.Atoi(c.DefaultQuery("olderThanDays", "0"))

	taskID, err := task.EnqueuePurge(c.Request.Context(), ctl.Queue, olderThanDays)
	if err != nil {
		ctl.Log.Error("failed to enqueue purge", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"taskId": taskID})
}
