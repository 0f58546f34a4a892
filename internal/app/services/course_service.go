package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/pkg/apperrors"
)

// CourseStore is the persistence surface the course service needs
type CourseStore interface {
	Create(ctx context.Context, c *models.Course) error
	GetByCourseID(ctx context.Context, courseID string) (*models.Course, error)
	GetAllActive(ctx context.Context) ([]models.Course, error)
	Distinct(ctx context.Context, column string) ([]string, error)
	Update(ctx context.Context, courseID string, patch map[string]interface{}) error
	Delete(ctx context.Context, courseID string) error
}

// CourseService handles course catalogue operations
type CourseService struct {
	courses CourseStore
	logger  zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courses CourseStore, logger zerolog.Logger) *CourseService {
	return &CourseService{courses: courses, logger: logger}
}

// CreateCourse creates an active course with a server-generated courseId.
// The course code is unique across the catalogue.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		CourseID:     uuid.New().String(),
		AcademicYear: req.AcademicYear,
		CourseCode:   req.CourseCode,
		CourseName:   req.CourseName,
		IsActive:     true,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Str("courseId", course.CourseID).Str("courseCode", course.CourseCode).Msg("Course created")
	return course, nil
}

// GetActiveCourses returns every active course
func (s *CourseService) GetActiveCourses(ctx context.Context) ([]models.Course, error) {
	return s.courses.GetAllActive(ctx)
}

// GetCourse retrieves a single course by its courseId
func (s *CourseService) GetCourse(ctx context.Context, courseID string) (*models.Course, error) {
	course, err := s.courses.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// DistinctAcademicYears lists the academic years present on active courses
func (s *CourseService) DistinctAcademicYears(ctx context.Context) ([]string, error) {
	return s.courses.Distinct(ctx, "academic_year")
}

// DistinctCourseNames lists the names of active courses
func (s *CourseService) DistinctCourseNames(ctx context.Context) ([]string, error) {
	return s.courses.Distinct(ctx, "course_name")
}

// DistinctCourseCodes lists the codes of active courses
func (s *CourseService) DistinctCourseCodes(ctx context.Context) ([]string, error) {
	return s.courses.Distinct(ctx, "course_code")
}

// UpdateCourse applies a sparse patch to an existing course and returns
// the updated document
func (s *CourseService) UpdateCourse(ctx context.Context, req *dto.UpdateCourseRequest) (*models.Course, error) {
	patch := map[string]interface{}{}
	if req.AcademicYear != nil {
		patch["academic_year"] = *req.AcademicYear
	}
	if req.CourseCode != nil {
		patch["course_code"] = *req.CourseCode
	}
	if req.CourseName != nil {
		patch["course_name"] = *req.CourseName
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}

	if len(patch) > 0 {
		if err := s.courses.Update(ctx, req.CourseID, patch); err != nil {
			return nil, err
		}
	}

	course, err := s.courses.GetByCourseID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// DeleteCourse removes a course by its courseId
func (s *CourseService) DeleteCourse(ctx context.Context, courseID string) error {
	if err := s.courses.Delete(ctx, courseID); err != nil {
		return err
	}

	s.logger.Info().Str("courseId", courseID).Msg("Course deleted")
	return nil
}
