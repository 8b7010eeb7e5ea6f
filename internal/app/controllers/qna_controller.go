package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/services"
	"github.com/yigit/campushub/internal/middleware"
)

// QnAController handles question and answer operations
type QnAController struct {
	qnaService services.QnAService
	navigation services.NavigationService
}

// NewQnAController creates a new QnAController
func NewQnAController(qnaService services.QnAService, navigation services.NavigationService) *QnAController {
	return &QnAController{
		qnaService: qnaService,
		navigation: navigation,
	}
}

// AskQuestion godoc
// @Summary Ask a question
// @Tags qna
// @Accept json
// @Produce json
// @Param request body dto.AskQuestionRequest true "Question"
// @Success 201 {object} dto.APIResponse{data=dto.ActionResult{result=models.QnaPost}}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /qna/questions [post]
func (c *QnAController) AskQuestion(ctx *gin.Context) {
	var req dto.AskQuestionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	post, err := c.qnaService.AskQuestion(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	created(ctx, c.navigation, "Question posted!", post)
}

// PostAnswer godoc
// @Summary Answer a question
// @Tags qna
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param request body dto.PostAnswerRequest true "Answer"
// @Success 201 {object} dto.APIResponse{data=dto.ActionResult{result=models.Answer}}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /qna/questions/{id}/answers [post]
func (c *QnAController) PostAnswer(ctx *gin.Context) {
	var req dto.PostAnswerRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	answer, err := c.qnaService.PostAnswer(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	created(ctx, c.navigation, "Answer posted!", answer)
}
