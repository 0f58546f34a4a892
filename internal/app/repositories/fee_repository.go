package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/pkg/apperrors"
	"github.com/tvkcollege/admission-backend/internal/pkg/dberrors"
)

var feeColumns = []string{
	"id", "fee_id", "academic_year", "course_code", "fee_type", "category",
	"tuition_fees1", "tuition_fees2", "exam_fees", "notebook_fees",
	"uniform_fees", "miscellaneous_fees", "other_fees", "total_fees",
	"due_date", "is_active",
}

func scanFee(row pgx.Row) (*models.Fee, error) {
	var f models.Fee
	err := row.Scan(
		&f.ID, &f.FeeID, &f.AcademicYear, &f.CourseCode, &f.FeeType, &f.Category,
		&f.TuitionFees1, &f.TuitionFees2, &f.ExamFees, &f.NotebookFees,
		&f.UniformFees, &f.MiscellaneousFees, &f.OtherFees, &f.TotalFees,
		&f.DueDate, &f.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FeeRepository handles database operations for fee structures
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{db: db}
}

// Create inserts a fee row; feeId and the derived total must already be set
func (r *FeeRepository) Create(ctx context.Context, f *models.Fee) error {
	query := squirrel.Insert("fees").
		Columns(feeColumns[1:]...).
		Values(
			f.FeeID, f.AcademicYear, f.CourseCode, f.FeeType, f.Category,
			f.TuitionFees1, f.TuitionFees2, f.ExamFees, f.NotebookFees,
			f.UniformFees, f.MiscellaneousFees, f.OtherFees, f.TotalFees,
			f.DueDate, f.IsActive,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&f.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrFeeAlreadyExists
		}
		return fmt.Errorf("error creating fee: %w", err)
	}

	return nil
}

// GetByFeeID retrieves a fee by its natural identifier.
// Returns (nil, nil) when no row matches.
func (r *FeeRepository) GetByFeeID(ctx context.Context, feeID string) (*models.Fee, error) {
	query := squirrel.Select(feeColumns...).
		From("fees").
		Where("fee_id = ?", feeID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	fee, err := scanFee(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving fee: %w", err)
	}

	return fee, nil
}

// GetAllActive retrieves all active fee structures in insertion order
func (r *FeeRepository) GetAllActive(ctx context.Context) ([]models.Fee, error) {
	return r.queryFees(ctx, squirrel.Select(feeColumns...).
		From("fees").
		Where("is_active = TRUE").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar))
}

// GetByCriteria retrieves the active fees matching the exact criteria
func (r *FeeRepository) GetByCriteria(ctx context.Context, academicYear, courseCode, category string) ([]models.Fee, error) {
	return r.queryFees(ctx, squirrel.Select(feeColumns...).
		From("fees").
		Where("academic_year = ?", academicYear).
		Where("course_code = ?", courseCode).
		Where("category = ?", category).
		Where("is_active = TRUE").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar))
}

func (r *FeeRepository) queryFees(ctx context.Context, query squirrel.SelectBuilder) ([]models.Fee, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var fees []models.Fee
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		fees = append(fees, *fee)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fees, nil
}

// Update writes the full merged fee state back by feeId. The caller merges
// the patch and recomputes the derived total before calling.
func (r *FeeRepository) Update(ctx context.Context, f *models.Fee) error {
	query := squirrel.Update("fees").
		SetMap(map[string]interface{}{
			"academic_year":      f.AcademicYear,
			"course_code":        f.CourseCode,
			"fee_type":           f.FeeType,
			"category":           f.Category,
			"tuition_fees1":      f.TuitionFees1,
			"tuition_fees2":      f.TuitionFees2,
			"exam_fees":          f.ExamFees,
			"notebook_fees":      f.NotebookFees,
			"uniform_fees":       f.UniformFees,
			"miscellaneous_fees": f.MiscellaneousFees,
			"other_fees":         f.OtherFees,
			"total_fees":         f.TotalFees,
			"due_date":           f.DueDate,
			"is_active":          f.IsActive,
		}).
		Where("fee_id = ?", f.FeeID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating fee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}

// Delete removes a fee row by its natural identifier
func (r *FeeRepository) Delete(ctx context.Context, feeID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM fees WHERE fee_id = $1`, feeID)
	if err != nil {
		return fmt.Errorf("error deleting fee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}
