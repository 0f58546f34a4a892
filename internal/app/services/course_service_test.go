package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/pkg/apperrors"
	"github.com/tvkcollege/admission-backend/internal/pkg/validation"
)

// fakeCourseStore enforces course-code uniqueness like the real table does
type fakeCourseStore struct {
	courses []models.Course
	patch   map[string]interface{}
}

func (f *fakeCourseStore) Create(_ context.Context, c *models.Course) error {
	for _, existing := range f.courses {
		if existing.CourseCode == c.CourseCode {
			return apperrors.ErrCourseAlreadyExists
		}
	}
	f.courses = append(f.courses, *c)
	return nil
}

func (f *fakeCourseStore) GetByCourseID(_ context.Context, courseID string) (*models.Course, error) {
	for _, c := range f.courses {
		if c.CourseID == courseID {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCourseStore) GetAllActive(_ context.Context) ([]models.Course, error) {
	var out []models.Course
	for _, c := range f.courses {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) Distinct(_ context.Context, column string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, c := range f.courses {
		if !c.IsActive {
			continue
		}
		var v string
		switch column {
		case "academic_year":
			v = c.AcademicYear
		case "course_name":
			v = c.CourseName
		case "course_code":
			v = c.CourseCode
		}
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) Update(_ context.Context, courseID string, patch map[string]interface{}) error {
	f.patch = patch
	for i := range f.courses {
		if f.courses[i].CourseID == courseID {
			if v, ok := patch["is_active"]; ok {
				f.courses[i].IsActive = v.(bool)
			}
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

func (f *fakeCourseStore) Delete(_ context.Context, courseID string) error {
	for i := range f.courses {
		if f.courses[i].CourseID == courseID {
			f.courses = append(f.courses[:i], f.courses[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

func newCourseService(store *fakeCourseStore) *CourseService {
	return NewCourseService(store, zerolog.Nop())
}

func TestCreateCourseShape(t *testing.T) {
	store := &fakeCourseStore{}
	svc := newCourseService(store)

	course, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		AcademicYear: "2024-2025",
		CourseCode:   "BSC-CS",
		CourseName:   "Computer Science",
	})
	require.NoError(t, err)

	assert.True(t, validation.IsValidUUID(course.CourseID))
	assert.True(t, course.IsActive)

	codes, err := svc.DistinctCourseCodes(context.Background())
	require.NoError(t, err)
	assert.Contains(t, codes, "BSC-CS")
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	store := &fakeCourseStore{}
	svc := newCourseService(store)

	first, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		AcademicYear: "2024-2025",
		CourseCode:   "BSC-CS",
		CourseName:   "Computer Science",
	})
	require.NoError(t, err)

	_, err = svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		AcademicYear: "2025-2026",
		CourseCode:   "BSC-CS",
		CourseName:   "Computer Science v2",
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyExists)

	// original untouched
	got, err := svc.GetCourse(context.Background(), first.CourseID)
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", got.CourseName)
	assert.Equal(t, "2024-2025", got.AcademicYear)
}

func TestDeactivatedCourseHiddenFromListings(t *testing.T) {
	store := &fakeCourseStore{}
	svc := newCourseService(store)

	course, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		AcademicYear: "2024-2025",
		CourseCode:   "BA-ENG",
		CourseName:   "English Literature",
	})
	require.NoError(t, err)

	inactive := false
	_, err = svc.UpdateCourse(context.Background(), &dto.UpdateCourseRequest{
		CourseID: course.CourseID,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	active, err := svc.GetActiveCourses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)

	codes, err := svc.DistinctCourseCodes(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, codes, "BA-ENG")
}

func TestUpdateCourseUnknownID(t *testing.T) {
	svc := newCourseService(&fakeCourseStore{})

	name := "Whatever"
	_, err := svc.UpdateCourse(context.Background(), &dto.UpdateCourseRequest{
		CourseID:   "99999999-9999-4999-8999-999999999999",
		CourseName: &name,
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
