package models

import "time"

// Fee defines the fee structure model based on the 'fees' table
type Fee struct {
	ID           int64  `json:"-" db:"id"`
	FeeID        string `json:"feeId" db:"fee_id"`
	AcademicYear string `json:"academicYear" db:"academic_year"`
	CourseCode   string `json:"courseCode" db:"course_code"`
	FeeType      string `json:"feeType" db:"fee_type"`
	Category     string `json:"category" db:"category"`

	TuitionFees1      float64 `json:"tuitionFees1" db:"tuition_fees1"`
	TuitionFees2      float64 `json:"tuitionFees2" db:"tuition_fees2"`
	ExamFees          float64 `json:"examFees" db:"exam_fees"`
	NotebookFees      float64 `json:"notebookFees" db:"notebook_fees"`
	UniformFees       float64 `json:"uniformFees" db:"uniform_fees"`
	MiscellaneousFees float64 `json:"miscellaneousFees" db:"miscellaneous_fees"`
	OtherFees         float64 `json:"otherFees" db:"other_fees"`

	// TotalFees is derived; it is recomputed from the seven components
	// before every write and never taken from the client.
	TotalFees float64 `json:"totalFees" db:"total_fees"`

	DueDate  time.Time `json:"dueDate" db:"due_date"`
	IsActive bool      `json:"isActive" db:"is_active"`
}

// ComputeTotalFees recomputes the derived total from the seven components.
func (f *Fee) ComputeTotalFees() {
	f.TotalFees = f.TuitionFees1 +
		f.TuitionFees2 +
		f.ExamFees +
		f.NotebookFees +
		f.UniformFees +
		f.MiscellaneousFees +
		f.OtherFees
}
