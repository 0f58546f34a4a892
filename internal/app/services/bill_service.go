package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/pkg/apperrors"
	"github.com/tvkcollege/admission-backend/internal/pkg/helpers"
	"github.com/tvkcollege/admission-backend/internal/pkg/validation"
)

// BillStore is the persistence surface the bill service needs
type BillStore interface {
	Create(ctx context.Context, b *models.Bill) error
	GetByBillID(ctx context.Context, billID string) (*models.Bill, error)
	GetPage(ctx context.Context, offset uint64, limit int) ([]models.Bill, int64, error)
	Update(ctx context.Context, billID string, patch map[string]interface{}) error
	Delete(ctx context.Context, billID string) error
}

// BillService handles bill operations. Every billId coming from a client is
// checked against the UUID format before the store is touched, so malformed
// identifiers fail fast instead of producing empty lookups.
type BillService struct {
	bills  BillStore
	logger zerolog.Logger
}

// NewBillService creates a new BillService
func NewBillService(bills BillStore, logger zerolog.Logger) *BillService {
	return &BillService{bills: bills, logger: logger}
}

func (s *BillService) checkBillID(billID string) error {
	if !validation.IsValidUUID(billID) {
		return apperrors.ErrInvalidBillID
	}
	return nil
}

// CreateBill creates a bill with a server-generated billId
func (s *BillService) CreateBill(ctx context.Context, req *dto.CreateBillRequest) (*models.Bill, error) {
	bill := &models.Bill{
		BillID:       uuid.New().String(),
		AcademicYear: req.AcademicYear,
		Department:   req.Department,
		RollNo:       req.RollNo,
		Name:         req.Name,
		FeesDetails: models.FeesDetails{
			OldFees: *req.FeesDetails.OldFees,
			NewFees: *req.FeesDetails.NewFees,
		},
	}
	if req.Discount != nil {
		bill.Discount = *req.Discount
	}
	if req.Fine != nil {
		bill.Fine = *req.Fine
	}

	if err := s.bills.Create(ctx, bill); err != nil {
		return nil, err
	}

	s.logger.Info().Str("billId", bill.BillID).Msg("Bill created")
	return bill, nil
}

// GetBills returns one page of bills plus the overall total
func (s *BillService) GetBills(ctx context.Context, page, limit int) ([]models.Bill, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, limit)
	return s.bills.GetPage(ctx, offset, limit)
}

// GetBill retrieves a single bill by its billId
func (s *BillService) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	if err := s.checkBillID(billID); err != nil {
		return nil, err
	}

	bill, err := s.bills.GetByBillID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperrors.ErrBillNotFound
	}
	return bill, nil
}

// UpdateBill applies a sparse patch to an existing bill and returns the
// updated document
func (s *BillService) UpdateBill(ctx context.Context, req *dto.UpdateBillRequest) (*models.Bill, error) {
	if err := s.checkBillID(req.BillID); err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}
	if req.AcademicYear != nil {
		patch["academic_year"] = *req.AcademicYear
	}
	if req.Department != nil {
		patch["department"] = *req.Department
	}
	if req.RollNo != nil {
		patch["roll_no"] = *req.RollNo
	}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.FeesDetails != nil {
		patch["old_fees"] = *req.FeesDetails.OldFees
		patch["new_fees"] = *req.FeesDetails.NewFees
	}
	if req.Discount != nil {
		patch["discount"] = *req.Discount
	}
	if req.Fine != nil {
		patch["fine"] = *req.Fine
	}

	if len(patch) > 0 {
		if err := s.bills.Update(ctx, req.BillID, patch); err != nil {
			return nil, err
		}
	}

	bill, err := s.bills.GetByBillID(ctx, req.BillID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperrors.ErrBillNotFound
	}
	return bill, nil
}

// DeleteBill removes a bill by its billId
func (s *BillService) DeleteBill(ctx context.Context, billID string) error {
	if err := s.checkBillID(billID); err != nil {
		return err
	}

	if err := s.bills.Delete(ctx, billID); err != nil {
		return err
	}

	s.logger.Info().Str("billId", billID).Msg("Bill deleted")
	return nil
}
