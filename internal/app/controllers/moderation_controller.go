package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/services"
	"github.com/yigit/campushub/internal/middleware"
)

// ModerationController handles blocking and reporting
type ModerationController struct {
	moderationService services.ModerationService
	navigation        services.NavigationService
}

// NewModerationController creates a new ModerationController
func NewModerationController(moderationService services.ModerationService, navigation services.NavigationService) *ModerationController {
	return &ModerationController{
		moderationService: moderationService,
		navigation:        navigation,
	}
}

// BlockUser godoc
// @Summary Block a user
// @Description Hides the user's chat messages. Blocking an already blocked user is a no-op.
// @Tags moderation
// @Accept json
// @Produce json
// @Param request body dto.BlockUserRequest true "User to block"
// @Success 200 {object} dto.APIResponse{data=dto.ActionResult}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /blocks [post]
func (c *ModerationController) BlockUser(ctx *gin.Context) {
	var req dto.BlockUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.moderationService.Block(ctx.Request.Context(), req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, c.navigation, "User blocked", nil)
}

// UnblockUser godoc
// @Summary Unblock a user
// @Description Unblocking a user who is not blocked is a no-op.
// @Tags moderation
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.ActionResult}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /blocks/{userId} [delete]
func (c *ModerationController) UnblockUser(ctx *gin.Context) {
	if err := c.moderationService.Unblock(ctx.Request.Context(), ctx.Param("userId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, c.navigation, "User unblocked", nil)
}

// SubmitReport godoc
// @Summary Report a user or content
// @Tags moderation
// @Accept json
// @Produce json
// @Param request body dto.ReportRequest true "Report"
// @Success 201 {object} dto.APIResponse{data=dto.ReportResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /reports [post]
func (c *ModerationController) SubmitReport(ctx *gin.Context) {
	var req dto.ReportRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.moderationService.SubmitReport(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse(resp.Message, resp))
}
