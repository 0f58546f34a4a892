package dto

// FeesDetailsRequest carries the old/new fee pair. Pointers distinguish
// "absent" from zero so a missing value fails validation instead of
// silently becoming 0.
type FeesDetailsRequest struct {
	OldFees *float64 `json:"oldFees" binding:"required"`
	NewFees *float64 `json:"newFees" binding:"required"`
}

// CreateBillRequest is the bill creation payload
type CreateBillRequest struct {
	AcademicYear string              `json:"academicYear" binding:"required"`
	Department   string              `json:"department" binding:"required"`
	RollNo       string              `json:"rollNo" binding:"required"`
	Name         string              `json:"name" binding:"required"`
	FeesDetails  *FeesDetailsRequest `json:"feesDetails" binding:"required"`
	Discount     *float64            `json:"discount"`
	Fine         *float64            `json:"fine"`
}

// UpdateBillRequest is the sparse bill update payload; billId selects the
// document, every other present field replaces the stored one.
type UpdateBillRequest struct {
	BillID       string              `json:"billId" binding:"required"`
	AcademicYear *string             `json:"academicYear"`
	Department   *string             `json:"department"`
	RollNo       *string             `json:"rollNo"`
	Name         *string             `json:"name"`
	FeesDetails  *FeesDetailsRequest `json:"feesDetails"`
	Discount     *float64            `json:"discount"`
	Fine         *float64            `json:"fine"`
}
