package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/app/services"
	"github.com/tvkcollege/admission-backend/internal/middleware"
)

// FeeController handles fee structure endpoints
type FeeController struct {
	feeService *services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService *services.FeeService) *FeeController {
	return &FeeController{feeService: feeService}
}

// CreateFee handles POST /fees/create_fee
func (c *FeeController) CreateFee(ctx *gin.Context) {
	var req dto.CreateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	fee, err := c.feeService.CreateFee(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, fee)
}

// GetAllFees handles GET /fees/get_all_fees
func (c *FeeController) GetAllFees(ctx *gin.Context) {
	fees, err := c.feeService.GetActiveFees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if fees == nil {
		fees = []models.Fee{}
	}
	ctx.JSON(http.StatusOK, fees)
}

// GetFee handles GET /fees/get_fee/:feeId
func (c *FeeController) GetFee(ctx *gin.Context) {
	fee, err := c.feeService.GetFee(ctx, ctx.Param("feeId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, fee)
}

// GetFeesByCriteria handles POST /fees/get_fees_by_criteria
func (c *FeeController) GetFeesByCriteria(ctx *gin.Context) {
	var req dto.FeeCriteriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	fees, err := c.feeService.GetFeesByCriteria(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, fees)
}

// UpdateFee handles PUT /fees/update_fee
func (c *FeeController) UpdateFee(ctx *gin.Context) {
	var req dto.UpdateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	fee, err := c.feeService.UpdateFee(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, fee)
}

// DeleteFee handles DELETE /fees/delete_fee/:feeId
func (c *FeeController) DeleteFee(ctx *gin.Context) {
	if err := c.feeService.DeleteFee(ctx, ctx.Param("feeId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Fee deleted successfully"})
}
