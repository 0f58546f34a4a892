package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/app/services"
	"github.com/tvkcollege/admission-backend/internal/middleware"
	"github.com/tvkcollege/admission-backend/internal/pkg/filestorage"
	"github.com/tvkcollege/admission-backend/internal/pkg/helpers"
)

// photoFormField is the multipart field carrying the student photo
const photoFormField = "studentPhoto"

// StudentController handles admission record endpoints. Create and update
// accept either a JSON body or a multipart form with the photo riding
// alongside the student fields.
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

func handlePhotoError(ctx *gin.Context, err error) bool {
	switch {
	case errors.Is(err, filestorage.ErrNotAnImage):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Only image files are accepted").
			WithField(photoFormField)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return true
	case errors.Is(err, filestorage.ErrFileTooBig):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Photo must be 1MB or smaller").
			WithField(photoFormField)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return true
	}
	return false
}

// CreateNewStudent handles POST /admission/create_new_student
func (c *StudentController) CreateNewStudent(ctx *gin.Context) {
	var form dto.StudentForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	// The photo is optional; FormFile errors just mean it was not sent.
	photo, _ := ctx.FormFile(photoFormField)

	student, err := c.studentService.CreateStudent(ctx, &form, photo)
	if err != nil {
		if handlePhotoError(ctx, err) {
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// GetAllStudents handles GET /admission/get_all_student
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	students, total, err := c.studentService.GetStudents(ctx, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if students == nil {
		students = []models.Student{}
	}
	ctx.JSON(http.StatusOK, dto.StudentListResponse{Students: students, Total: total})
}

// GetStudentByID handles GET /admission/get_student_by_id/:id
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// UpdateStudentByID handles PUT /admission/update_student_by_id/:id
func (c *StudentController) UpdateStudentByID(ctx *gin.Context) {
	var form dto.StudentForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	photo, _ := ctx.FormFile(photoFormField)

	student, err := c.studentService.UpdateStudent(ctx, ctx.Param("id"), &form, photo)
	if err != nil {
		if handlePhotoError(ctx, err) {
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// DeleteStudentByID handles DELETE /admission/delete_student_id/:id
func (c *StudentController) DeleteStudentByID(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted successfully"})
}
