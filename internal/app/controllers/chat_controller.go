package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/services"
	"github.com/yigit/campushub/internal/middleware"
)

// ChatController handles chat message operations
type ChatController struct {
	chatService services.ChatService
	navigation  services.NavigationService
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService, navigation services.NavigationService) *ChatController {
	return &ChatController{
		chatService: chatService,
		navigation:  navigation,
	}
}

// SendMessage godoc
// @Summary Send a chat message
// @Description Posts a message as the current user. Text is trimmed and must not be empty.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=dto.ActionResult{result=dto.ChatMessageView}}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 429 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail} "Could not save"
// @Router /chat/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	view, err := c.chatService.SendMessage(ctx.Request.Context(), req.Text)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	created(ctx, c.navigation, "Message sent", view)
}

// React godoc
// @Summary React to a chat message
// @Description Increments a reaction counter. Kind defaults to like. Reacting to an unknown message is a no-op.
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param request body dto.ReactRequest false "Reaction"
// @Success 200 {object} dto.APIResponse{data=dto.ActionResult{result=dto.ChatMessageView}}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /chat/messages/{id}/reactions [post]
func (c *ChatController) React(ctx *gin.Context) {
	var req dto.ReactRequest
	if ctx.Request.ContentLength > 0 && !middleware.BindJSON(ctx, &req) {
		return
	}

	view, err := c.chatService.React(ctx.Request.Context(), ctx.Param("id"), req.Kind)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, c.navigation, "", view)
}
