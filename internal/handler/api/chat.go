package api

import (
	"errors"
	"net/http"

	reqdto "parkcompare/internal/handler/dto/request"
	resdto "parkcompare/internal/handler/dto/response"
	"parkcompare/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// ChatHandler backs the ParkAssist widget. The conversation state rides
// in the request, so the server holds nothing between turns.
type ChatHandler struct {
	chat commands.ChatCommands
}

func NewChatHandler(chat commands.ChatCommands) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// @Summary Send a chat message
// @Description Advance the ParkAssist conversation one turn
// @Tags chat
// @Accept json
// @Produce json
// @Param request body reqdto.ChatMessageRequest true "Message and conversation state"
// @Success 200 {object} resdto.ChatMessageResponse
// @Failure 400 {object} map[string]string
// @Router /chat/messages [post]
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req reqdto.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.chat.HandleMessage(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromChatResult(result))
}

// @Summary Open a support case
// @Description Open a support case directly, outside the conversation flow
// @Tags chat
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCaseRequest true "Case details"
// @Success 201 {object} resdto.CaseResponse
// @Failure 400 {object} map[string]string
// @Router /chat/cases [post]
func (h *ChatHandler) CreateCase(c *gin.Context) {
	var req reqdto.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.chat.CreateCase(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCaseIntent):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown case intent",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCase(created))
}
