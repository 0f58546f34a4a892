package dto

// CreateFeeRequest is the fee creation payload. There is deliberately no
// totalFees field: the total is derived server-side from the components.
type CreateFeeRequest struct {
	AcademicYear string `json:"academicYear" binding:"required"`
	CourseCode   string `json:"courseCode" binding:"required"`
	FeeType      string `json:"feeType" binding:"required"`
	Category     string `json:"category" binding:"required"`

	TuitionFees1      float64 `json:"tuitionFees1"`
	TuitionFees2      float64 `json:"tuitionFees2"`
	ExamFees          float64 `json:"examFees"`
	NotebookFees      float64 `json:"notebookFees"`
	UniformFees       float64 `json:"uniformFees"`
	MiscellaneousFees float64 `json:"miscellaneousFees"`
	OtherFees         float64 `json:"otherFees"`

	DueDate string `json:"dueDate" binding:"required"`
}

// UpdateFeeRequest is the sparse fee update payload keyed by feeId.
// totalFees is likewise absent and recomputed on commit.
type UpdateFeeRequest struct {
	FeeID        string  `json:"feeId" binding:"required"`
	AcademicYear *string `json:"academicYear"`
	CourseCode   *string `json:"courseCode"`
	FeeType      *string `json:"feeType"`
	Category     *string `json:"category"`

	TuitionFees1      *float64 `json:"tuitionFees1"`
	TuitionFees2      *float64 `json:"tuitionFees2"`
	ExamFees          *float64 `json:"examFees"`
	NotebookFees      *float64 `json:"notebookFees"`
	UniformFees       *float64 `json:"uniformFees"`
	MiscellaneousFees *float64 `json:"miscellaneousFees"`
	OtherFees         *float64 `json:"otherFees"`

	DueDate  *string `json:"dueDate"`
	IsActive *bool   `json:"isActive"`
}

// FeeCriteriaRequest selects fee structures by exact match
type FeeCriteriaRequest struct {
	AcademicYear string `json:"academicYear" binding:"required"`
	CourseCode   string `json:"courseCode" binding:"required"`
	Category     string `json:"category" binding:"required"`
}
