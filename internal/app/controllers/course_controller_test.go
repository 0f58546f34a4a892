package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/services"
	"github.com/tvkcollege/admission-backend/internal/pkg/apperrors"
	"github.com/tvkcollege/admission-backend/internal/pkg/validation"
)

// memCourseStore is an in-memory CourseStore with the same uniqueness rule
// as the courses table
type memCourseStore struct {
	courses []models.Course
}

func (m *memCourseStore) Create(_ context.Context, c *models.Course) error {
	for _, existing := range m.courses {
		if existing.CourseCode == c.CourseCode {
			return apperrors.ErrCourseAlreadyExists
		}
	}
	m.courses = append(m.courses, *c)
	return nil
}

func (m *memCourseStore) GetByCourseID(_ context.Context, courseID string) (*models.Course, error) {
	for _, c := range m.courses {
		if c.CourseID == courseID {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCourseStore) GetAllActive(_ context.Context) ([]models.Course, error) {
	var out []models.Course
	for _, c := range m.courses {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCourseStore) Distinct(_ context.Context, column string) ([]string, error) {
	var out []string
	for _, c := range m.courses {
		if !c.IsActive {
			continue
		}
		switch column {
		case "academic_year":
			out = append(out, c.AcademicYear)
		case "course_name":
			out = append(out, c.CourseName)
		case "course_code":
			out = append(out, c.CourseCode)
		}
	}
	return out, nil
}

func (m *memCourseStore) Update(_ context.Context, _ string, _ map[string]interface{}) error {
	return nil
}

func (m *memCourseStore) Delete(_ context.Context, _ string) error { return nil }

func setupCourseRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := services.NewCourseService(&memCourseStore{}, zerolog.Nop())
	ctrl := NewCourseController(svc)

	router := gin.New()
	courses := router.Group("/courses")
	courses.POST("/create_course", ctrl.CreateCourse)
	courses.GET("/get_all_courses", ctrl.GetAllCourses)
	courses.GET("/get_all_course_codes", ctrl.GetAllCourseCodes)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCourseEndToEndShape(t *testing.T) {
	router := setupCourseRouter(t)

	w := postJSON(t, router, "/courses/create_course", gin.H{
		"academicYear": "2024-2025",
		"courseCode":   "BSC-CS",
		"courseName":   "Computer Science",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, validation.IsValidUUID(created.CourseID))
	assert.True(t, created.IsActive)
	assert.Equal(t, "BSC-CS", created.CourseCode)

	// the new code shows up in the distinct code listing
	req := httptest.NewRequest("GET", "/courses/get_all_course_codes", nil)
	lw := httptest.NewRecorder()
	router.ServeHTTP(lw, req)
	require.Equal(t, http.StatusOK, lw.Code)

	var codes []string
	require.NoError(t, json.Unmarshal(lw.Body.Bytes(), &codes))
	assert.Contains(t, codes, "BSC-CS")
}

func TestCreateCourseMissingField(t *testing.T) {
	router := setupCourseRouter(t)

	w := postJSON(t, router, "/courses/create_course", gin.H{
		"academicYear": "2024-2025",
		"courseName":   "Computer Science",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
}

func TestCreateCourseDuplicateConflict(t *testing.T) {
	router := setupCourseRouter(t)

	body := gin.H{
		"academicYear": "2024-2025",
		"courseCode":   "BSC-CS",
		"courseName":   "Computer Science",
	}
	require.Equal(t, http.StatusCreated, postJSON(t, router, "/courses/create_course", body).Code)

	w := postJSON(t, router, "/courses/create_course", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "RES_002")
}
