package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhikr1871/E-Cell/internal/pkg/chat/application/usecase"
)

// UnreadCountController serves GET /user/:userId/unread-count.
type UnreadCountController struct {
	Count *usecase.CountUnreadUseCase
}

func NewUnreadCountController(count *usecase.CountUnreadUseCase) *UnreadCountController {
	return &UnreadCountController{Count: count}
}

func (ctl *UnreadCountController) Handle(c *gin.Context) {
	n, err := ctl.Count.Execute(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unreadCount": n})
}
