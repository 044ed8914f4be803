package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abhikr1871/E-Cell/internal/pkg/chat/application/usecase"
)

// GetChatHistoryController serves GET /messages/:chatboxId with page/limit
// query parameters.
type GetChatHistoryController struct {
	History *usecase.GetChatHistoryUseCase
}

func NewGetChatHistoryController(history *usecase.GetChatHistoryUseCase) *GetChatHistoryController {
	return &GetChatHistoryController{History: history}
}

func (ctl *GetChatHistoryController) Handle(c *gin.Context) {
	chatboxID := c.Param("chatboxId")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	hp, err := ctl.History.Execute(c.Request.Context(), chatboxID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hp)
}
