package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/passboard/internal/app/models/dto"
	"github.com/yigit/passboard/internal/app/services"
	"github.com/yigit/passboard/internal/middleware"
)

// RecordController publishes the teacher performance records
type RecordController struct {
	recordService services.RecordService
}

// NewRecordController creates a new RecordController
func NewRecordController(recordService services.RecordService) *RecordController {
	return &RecordController{
		recordService: recordService,
	}
}

// GetAllRecords returns the full record collection
// @Summary List performance records
// @Description Returns every teacher performance record, unfiltered, in published order
// @Tags records
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.RecordListResponse} "Records retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Data source unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /records [get]
func (c *RecordController) GetAllRecords(ctx *gin.Context) {
	records, err := c.recordService.GetAllRecords(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewRecordListResponse(records)))
}

// GetDataFile serves the bare JSON array, as the static data file would
// @Summary Raw data file
// @Description Returns the record collection as a bare JSON array
// @Tags records
// @Produce json
// @Success 200 {array} models.Record
// @Failure 503 {object} dto.ErrorResponse "Data source unavailable"
// @Router /teacherData.json [get]
func (c *RecordController) GetDataFile(ctx *gin.Context) {
	records, err := c.recordService.GetAllRecords(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}
