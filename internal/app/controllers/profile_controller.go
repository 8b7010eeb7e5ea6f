package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/services"
	"github.com/yigit/campushub/internal/middleware"
)

// ProfileController serves identity profiles
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetMyProfile godoc
// @Summary Get my profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 503 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /profiles/me [get]
func (c *ProfileController) GetMyProfile(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	c.respondProfile(ctx, userID, userID)
}

// GetProfile godoc
// @Summary Get a profile
// @Description Email, phone, roll number and date of birth are masked unless the caller is an admin.
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 503 {object} dto.APIResponse{error=dto.ErrorDetail} "Role lookup failed"
// @Router /profiles/{id} [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	c.respondProfile(ctx, ctx.GetString(middleware.ContextUserID), ctx.Param("id"))
}

func (c *ProfileController) respondProfile(ctx *gin.Context, viewerID, userID string) {
	profile, err := c.profileService.GetProfile(ctx.Request.Context(), viewerID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// AddSkill godoc
// @Summary Add a skill to my profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddSkillRequest true "Skill"
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 503 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /profiles/me/skills [post]
func (c *ProfileController) AddSkill(ctx *gin.Context) {
	var req dto.AddSkillRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	skills, err := c.profileService.AddSkill(ctx.Request.Context(), ctx.GetString(middleware.ContextUserID), req.Skill)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Skill added", skills))
}

// AddAchievement godoc
// @Summary Add an achievement to my profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddProfileAchievementRequest true "Achievement"
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 503 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /profiles/me/achievements [post]
func (c *ProfileController) AddAchievement(ctx *gin.Context) {
	var req dto.AddProfileAchievementRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	list, err := c.profileService.AddAchievement(ctx.Request.Context(), ctx.GetString(middleware.ContextUserID), req.Achievement)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Achievement added", list))
}
