package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhikr1871/E-Cell/internal/pkg/chat/application/usecase"
)

// MarkAllMessagesReadController serves
// PATCH /chatbox/:chatboxId/mark-read/:userId.
type MarkAllMessagesReadController struct {
	MarkAll *usecase.MarkAllMessagesReadUseCase
}

func NewMarkAllMessagesReadController(markAll *usecase.MarkAllMessagesReadUseCase) *MarkAllMessagesReadController {
	return &MarkAllMessagesReadController{MarkAll: markAll}
}

func (ctl *MarkAllMessagesReadController) Handle(c *gin.Context) {
	updated, err := ctl.MarkAll.Execute(c.Request.Context(), c.Param("chatboxId"), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updatedCount": updated})
}
