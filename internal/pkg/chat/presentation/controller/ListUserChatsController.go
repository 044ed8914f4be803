package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhikr1871/E-Cell/internal/pkg/chat/application/usecase"
	chat "github.com/abhikr1871/E-Cell/internal/pkg/chat/domain"
)

// ListUserChatsController serves GET /user/:userId/chats.
type ListUserChatsController struct {
	List *usecase.ListUserChatsUseCase
}

func NewListUserChatsController(list *usecase.ListUserChatsUseCase) *ListUserChatsController {
	return &ListUserChatsController{List: list}
}

func (ctl *ListUserChatsController) Handle(c *gin.Context) {
	chats, err := ctl.List.Execute(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if chats == nil {
		chats = []chat.ChatSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"chats": chats})
}
