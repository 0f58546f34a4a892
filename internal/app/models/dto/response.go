package dto

import "github.com/tvkcollege/admission-backend/internal/app/models"

// SuccessResponse represents a bare confirmation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// StudentListResponse is the paginated student listing body
type StudentListResponse struct {
	Students []models.Student `json:"students"`
	Total    int64            `json:"total"`
}

// BillListResponse is the paginated bill listing body; page and limit are
// echoed back for client-side pagination math.
type BillListResponse struct {
	Bills []models.Bill `json:"bills"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}
