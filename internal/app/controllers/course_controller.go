package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/app/services"
	"github.com/tvkcollege/admission-backend/internal/middleware"
)

// CourseController handles course catalogue endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse handles POST /courses/create_course
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// GetAllCourses handles GET /courses/get_all_courses
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetActiveCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if courses == nil {
		courses = []models.Course{}
	}
	ctx.JSON(http.StatusOK, courses)
}

func (c *CourseController) respondDistinct(ctx *gin.Context, values []string, err error) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if values == nil {
		values = []string{}
	}
	ctx.JSON(http.StatusOK, values)
}

// GetAllAcademicYears handles GET /courses/get_all_academic_years
func (c *CourseController) GetAllAcademicYears(ctx *gin.Context) {
	values, err := c.courseService.DistinctAcademicYears(ctx)
	c.respondDistinct(ctx, values, err)
}

// GetAllCourseNames handles GET /courses/get_all_course_names
func (c *CourseController) GetAllCourseNames(ctx *gin.Context) {
	values, err := c.courseService.DistinctCourseNames(ctx)
	c.respondDistinct(ctx, values, err)
}

// GetAllCourseCodes handles GET /courses/get_all_course_codes
func (c *CourseController) GetAllCourseCodes(ctx *gin.Context) {
	values, err := c.courseService.DistinctCourseCodes(ctx)
	c.respondDistinct(ctx, values, err)
}

// UpdateCourse handles PUT /courses/update_course
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse handles DELETE /courses/delete_course/:courseId
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx, ctx.Param("courseId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Course deleted successfully"})
}
