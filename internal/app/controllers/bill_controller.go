package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/app/services"
	"github.com/tvkcollege/admission-backend/internal/middleware"
	"github.com/tvkcollege/admission-backend/internal/pkg/helpers"
)

// BillController handles bill endpoints
type BillController struct {
	billService *services.BillService
}

// NewBillController creates a new BillController
func NewBillController(billService *services.BillService) *BillController {
	return &BillController{billService: billService}
}

// CreateNewBill handles POST /bills/create_new_bill
func (c *BillController) CreateNewBill(ctx *gin.Context) {
	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	bill, err := c.billService.CreateBill(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, bill)
}

// GetAllBills handles GET /bills/get_all_bills
func (c *BillController) GetAllBills(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	bills, total, err := c.billService.GetBills(ctx, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if bills == nil {
		bills = []models.Bill{}
	}
	ctx.JSON(http.StatusOK, dto.BillListResponse{
		Bills: bills,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetBillByID handles GET /bills/get_bill_by_id/:billId
func (c *BillController) GetBillByID(ctx *gin.Context) {
	bill, err := c.billService.GetBill(ctx, ctx.Param("billId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, bill)
}

// UpdateBillByID handles PUT /bills/update_bill_by_id
func (c *BillController) UpdateBillByID(ctx *gin.Context) {
	var req dto.UpdateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	bill, err := c.billService.UpdateBill(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, bill)
}

// DeleteBillByID handles DELETE /bills/delete_bill_by_id/:billId
func (c *BillController) DeleteBillByID(ctx *gin.Context) {
	if err := c.billService.DeleteBill(ctx, ctx.Param("billId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Bill deleted successfully"})
}
