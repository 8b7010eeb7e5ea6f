package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/services"
	"github.com/yigit/campushub/internal/middleware"
)

// MarketplaceController handles listing operations
type MarketplaceController struct {
	marketplaceService services.MarketplaceService
	navigation         services.NavigationService
}

// NewMarketplaceController creates a new MarketplaceController
func NewMarketplaceController(marketplaceService services.MarketplaceService, navigation services.NavigationService) *MarketplaceController {
	return &MarketplaceController{
		marketplaceService: marketplaceService,
		navigation:         navigation,
	}
}

// CreateListing godoc
// @Summary Create a marketplace listing
// @Description Lists an item for sale with the current user as seller. Tags are comma separated.
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body dto.CreateListingRequest true "Listing form"
// @Success 201 {object} dto.APIResponse{data=dto.ActionResult{result=models.MarketplaceItem}}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /marketplace/items [post]
func (c *MarketplaceController) CreateListing(ctx *gin.Context) {
	var req dto.CreateListingRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	item, err := c.marketplaceService.CreateListing(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	created(ctx, c.navigation, "Item listed successfully!", item)
}
