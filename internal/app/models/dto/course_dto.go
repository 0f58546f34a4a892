package dto

// CreateCourseRequest is the course creation payload
type CreateCourseRequest struct {
	AcademicYear string `json:"academicYear" binding:"required"`
	CourseCode   string `json:"courseCode" binding:"required"`
	CourseName   string `json:"courseName" binding:"required"`
}

// UpdateCourseRequest is the sparse course update payload; toggling IsActive
// to false soft-hides the course from listings and pickers.
type UpdateCourseRequest struct {
	CourseID     string  `json:"courseId" binding:"required"`
	AcademicYear *string `json:"academicYear"`
	CourseCode   *string `json:"courseCode"`
	CourseName   *string `json:"courseName"`
	IsActive     *bool   `json:"isActive"`
}
