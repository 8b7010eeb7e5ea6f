package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/services"
	"github.com/yigit/campushub/internal/middleware"
)

// DataController handles export and clear-all
type DataController struct {
	dataService services.DataService
}

// NewDataController creates a new DataController
func NewDataController(dataService services.DataService) *DataController {
	return &DataController{
		dataService: dataService,
	}
}

// Export godoc
// @Summary Download my data
// @Description Current user, chat messages, listings, questions, achievements and blocked users as an indented JSON attachment
// @Tags data
// @Produce json
// @Success 200 {object} dto.ExportDocument
// @Failure 503 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /data/export [get]
func (c *DataController) Export(ctx *gin.Context) {
	data, err := c.dataService.Export(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+services.ExportFileName+`"`)
	ctx.Data(http.StatusOK, "application/json", data)
}

// ClearAll godoc
// @Summary Clear all data
// @Description Erases every stored collection and restores the built-in data. Requires {"confirm": true}.
// @Tags data
// @Accept json
// @Produce json
// @Param request body dto.ClearDataRequest true "Confirmation"
// @Success 200 {object} dto.APIResponse{data=dto.PageView}
// @Failure 412 {object} dto.APIResponse{error=dto.ErrorDetail} "Confirmation required"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /data/clear [post]
func (c *DataController) ClearAll(ctx *gin.Context) {
	var req dto.ClearDataRequest
	if ctx.Request.ContentLength > 0 && !middleware.BindJSON(ctx, &req) {
		return
	}

	page, err := c.dataService.ClearAll(ctx.Request.Context(), req.Confirm)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("All data cleared", page))
}
