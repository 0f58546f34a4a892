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

var billColumns = []string{
	"id", "bill_id", "academic_year", "department", "roll_no", "name",
	"old_fees", "new_fees", "discount", "fine",
}

func scanBill(row pgx.Row) (*models.Bill, error) {
	var b models.Bill
	err := row.Scan(
		&b.ID, &b.BillID, &b.AcademicYear, &b.Department, &b.RollNo, &b.Name,
		&b.FeesDetails.OldFees, &b.FeesDetails.NewFees, &b.Discount, &b.Fine,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// BillRepository handles database operations for bills
type BillRepository struct {
	db *pgxpool.Pool
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *pgxpool.Pool) *BillRepository {
	return &BillRepository{db: db}
}

// Create inserts a bill row; the billId must already be set on the model
func (r *BillRepository) Create(ctx context.Context, b *models.Bill) error {
	query := squirrel.Insert("bills").
		Columns(billColumns[1:]...).
		Values(
			b.BillID, b.AcademicYear, b.Department, b.RollNo, b.Name,
			b.FeesDetails.OldFees, b.FeesDetails.NewFees, b.Discount, b.Fine,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&b.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrBillAlreadyExists
		}
		return fmt.Errorf("error creating bill: %w", err)
	}

	return nil
}

// GetByBillID retrieves a bill by its natural identifier.
// Returns (nil, nil) when no row matches.
func (r *BillRepository) GetByBillID(ctx context.Context, billID string) (*models.Bill, error) {
	query := squirrel.Select(billColumns...).
		From("bills").
		Where("bill_id = ?", billID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	bill, err := scanBill(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving bill: %w", err)
	}

	return bill, nil
}

// GetPage returns one page of bills in insertion order plus the total count
func (r *BillRepository) GetPage(ctx context.Context, offset uint64, limit int) ([]models.Bill, int64, error) {
	query := squirrel.Select(billColumns...).
		From("bills").
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		bills = append(bills, *bill)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bills`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting bills: %w", err)
	}

	return bills, total, nil
}

// Update merges the present patch columns into an existing bill
func (r *BillRepository) Update(ctx context.Context, billID string, patch map[string]interface{}) error {
	if len(patch) == 0 {
		return nil
	}

	query := squirrel.Update("bills").
		SetMap(patch).
		Where("bill_id = ?", billID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrBillAlreadyExists
		}
		return fmt.Errorf("error updating bill: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBillNotFound
	}

	return nil
}

// Delete removes a bill row by its natural identifier
func (r *BillRepository) Delete(ctx context.Context, billID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM bills WHERE bill_id = $1`, billID)
	if err != nil {
		return fmt.Errorf("error deleting bill: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBillNotFound
	}

	return nil
}
