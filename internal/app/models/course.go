package models

// Course defines the course model based on the 'courses' table.
// IsActive is a visibility flag: inactive courses are hidden from
// listings and distinct-value queries without being removed.
type Course struct {
	ID           int64  `json:"-" db:"id"`
	CourseID     string `json:"courseId" db:"course_id"`
	AcademicYear string `json:"academicYear" db:"academic_year"`
	CourseCode   string `json:"courseCode" db:"course_code"`
	CourseName   string `json:"courseName" db:"course_name"`
	IsActive     bool   `json:"isActive" db:"is_active"`
}
