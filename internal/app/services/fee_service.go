package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/pkg/apperrors"
)

// FeeStore is the persistence surface the fee service needs
type FeeStore interface {
	Create(ctx context.Context, f *models.Fee) error
	GetByFeeID(ctx context.Context, feeID string) (*models.Fee, error)
	GetAllActive(ctx context.Context) ([]models.Fee, error)
	GetByCriteria(ctx context.Context, academicYear, courseCode, category string) ([]models.Fee, error)
	Update(ctx context.Context, f *models.Fee) error
	Delete(ctx context.Context, feeID string) error
}

// FeeService handles fee structure operations. The derived total is
// recomputed from the seven components before every write; clients can
// never set it directly.
type FeeService struct {
	fees   FeeStore
	logger zerolog.Logger
}

// NewFeeService creates a new FeeService
func NewFeeService(fees FeeStore, logger zerolog.Logger) *FeeService {
	return &FeeService{fees: fees, logger: logger}
}

// CreateFee creates an active fee structure with a server-generated feeId
func (s *FeeService) CreateFee(ctx context.Context, req *dto.CreateFeeRequest) (*models.Fee, error) {
	dueDate, err := parseDate(req.DueDate, "dueDate")
	if err != nil {
		return nil, err
	}

	fee := &models.Fee{
		FeeID:        uuid.New().String(),
		AcademicYear: req.AcademicYear,
		CourseCode:   req.CourseCode,
		FeeType:      req.FeeType,
		Category:     req.Category,

		TuitionFees1:      req.TuitionFees1,
		TuitionFees2:      req.TuitionFees2,
		ExamFees:          req.ExamFees,
		NotebookFees:      req.NotebookFees,
		UniformFees:       req.UniformFees,
		MiscellaneousFees: req.MiscellaneousFees,
		OtherFees:         req.OtherFees,

		DueDate:  dueDate,
		IsActive: true,
	}
	fee.ComputeTotalFees()

	if err := s.fees.Create(ctx, fee); err != nil {
		return nil, err
	}

	s.logger.Info().Str("feeId", fee.FeeID).Float64("totalFees", fee.TotalFees).Msg("Fee structure created")
	return fee, nil
}

// GetActiveFees returns every active fee structure
func (s *FeeService) GetActiveFees(ctx context.Context) ([]models.Fee, error) {
	return s.fees.GetAllActive(ctx)
}

// GetFee retrieves a single fee structure by its feeId
func (s *FeeService) GetFee(ctx context.Context, feeID string) (*models.Fee, error) {
	fee, err := s.fees.GetByFeeID(ctx, feeID)
	if err != nil {
		return nil, err
	}
	if fee == nil {
		return nil, apperrors.ErrFeeNotFound
	}
	return fee, nil
}

// GetFeesByCriteria returns the active fee structures matching the exact
// year/course/category triple. No match is reported as not found rather
// than an empty list.
func (s *FeeService) GetFeesByCriteria(ctx context.Context, req *dto.FeeCriteriaRequest) ([]models.Fee, error) {
	fees, err := s.fees.GetByCriteria(ctx, req.AcademicYear, req.CourseCode, req.Category)
	if err != nil {
		return nil, err
	}
	if len(fees) == 0 {
		return nil, apperrors.ErrFeeNotFound
	}
	return fees, nil
}

// UpdateFee merges a sparse patch into the stored fee, recomputes the
// total and writes the whole row back
func (s *FeeService) UpdateFee(ctx context.Context, req *dto.UpdateFeeRequest) (*models.Fee, error) {
	fee, err := s.fees.GetByFeeID(ctx, req.FeeID)
	if err != nil {
		return nil, err
	}
	if fee == nil {
		return nil, apperrors.ErrFeeNotFound
	}

	if req.AcademicYear != nil {
		fee.AcademicYear = *req.AcademicYear
	}
	if req.CourseCode != nil {
		fee.CourseCode = *req.CourseCode
	}
	if req.FeeType != nil {
		fee.FeeType = *req.FeeType
	}
	if req.Category != nil {
		fee.Category = *req.Category
	}
	if req.TuitionFees1 != nil {
		fee.TuitionFees1 = *req.TuitionFees1
	}
	if req.TuitionFees2 != nil {
		fee.TuitionFees2 = *req.TuitionFees2
	}
	if req.ExamFees != nil {
		fee.ExamFees = *req.ExamFees
	}
	if req.NotebookFees != nil {
		fee.NotebookFees = *req.NotebookFees
	}
	if req.UniformFees != nil {
		fee.UniformFees = *req.UniformFees
	}
	if req.MiscellaneousFees != nil {
		fee.MiscellaneousFees = *req.MiscellaneousFees
	}
	if req.OtherFees != nil {
		fee.OtherFees = *req.OtherFees
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate, "dueDate")
		if err != nil {
			return nil, err
		}
		fee.DueDate = dueDate
	}
	if req.IsActive != nil {
		fee.IsActive = *req.IsActive
	}

	fee.ComputeTotalFees()

	if err := s.fees.Update(ctx, fee); err != nil {
		return nil, err
	}

	return fee, nil
}

// DeleteFee removes a fee structure by its feeId
func (s *FeeService) DeleteFee(ctx context.Context, feeID string) error {
	if err := s.fees.Delete(ctx, feeID); err != nil {
		return err
	}

	s.logger.Info().Str("feeId", feeID).Msg("Fee structure deleted")
	return nil
}
