package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/renderers"
	"github.com/yigit/campushub/internal/app/services"
	"github.com/yigit/campushub/internal/middleware"
)

// PageController serves the navigation surface
type PageController struct {
	navigation services.NavigationService
}

// NewPageController creates a new PageController
func NewPageController(navigation services.NavigationService) *PageController {
	return &PageController{
		navigation: navigation,
	}
}

// ListPages godoc
// @Summary List pages
// @Description Page names in sidebar order and the page currently shown
// @Tags pages
// @Produce json
// @Success 200 {object} dto.APIResponse{data=map[string]interface{}}
// @Router /pages [get]
func (c *PageController) ListPages(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"pages":   models.Pages,
		"current": c.navigation.Current(),
	}))
}

// GetPage godoc
// @Summary Navigate to a page
// @Description Renders the named page and makes it current. Unknown names show the dashboard. Entering chat starts the chat simulator; leaving it stops it.
// @Tags pages
// @Produce json
// @Param page path string true "Page name" Enums(dashboard, chat, marketplace, qna, resources, hostels, blocks, ratings, achievements, announcements, profile)
// @Param search query string false "Marketplace search text"
// @Param category query string false "Marketplace category, or all"
// @Param sort query string false "Marketplace order" Enums(newest, price-low, price-high)
// @Success 200 {object} dto.APIResponse{data=dto.PageView}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 503 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /pages/{page} [get]
func (c *PageController) GetPage(ctx *gin.Context) {
	var filter dto.MarketplaceFilter
	if !middleware.BindQuery(ctx, &filter) {
		return
	}

	view, err := c.navigation.Navigate(ctx.Request.Context(), ctx.Param("page"), renderers.Options{Marketplace: filter})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(view))
}
