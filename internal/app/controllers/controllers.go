package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/services"
)

// respondWithPage writes result together with the re-rendered current page.
// A failed re-render does not undo a committed action, so it is logged and
// the page is omitted.
func respondWithPage(ctx *gin.Context, nav services.NavigationService, status int, message string, result interface{}) {
	page, err := nav.Refresh(ctx.Request.Context())
	if err != nil {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to re-render current page")
	}
	ctx.JSON(status, dto.NewMessageResponse(message, dto.ActionResult{Result: result, Page: page}))
}

func created(ctx *gin.Context, nav services.NavigationService, message string, result interface{}) {
	respondWithPage(ctx, nav, http.StatusCreated, message, result)
}

func ok(ctx *gin.Context, nav services.NavigationService, message string, result interface{}) {
	respondWithPage(ctx, nav, http.StatusOK, message, result)
}
