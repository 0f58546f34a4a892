package models

// FeesDetails is the old/new fee pair carried on a bill
type FeesDetails struct {
	OldFees float64 `json:"oldFees" db:"old_fees"`
	NewFees float64 `json:"newFees" db:"new_fees"`
}

// Bill defines the bill model based on the 'bills' table
type Bill struct {
	ID           int64       `json:"-" db:"id"`
	BillID       string      `json:"billId" db:"bill_id"`
	AcademicYear string      `json:"academicYear" db:"academic_year"`
	Department   string      `json:"department" db:"department"`
	RollNo       string      `json:"rollNo" db:"roll_no"`
	Name         string      `json:"name" db:"name"`
	FeesDetails  FeesDetails `json:"feesDetails"`
	Discount     float64     `json:"discount" db:"discount"`
	Fine         float64     `json:"fine" db:"fine"`
}
