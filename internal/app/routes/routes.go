package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tvkcollege/admission-backend/internal/app/controllers"
	"github.com/tvkcollege/admission-backend/internal/middleware"
)

// SetupRouter configures all application routes. Paths follow the shapes the
// admission frontend already calls. All entity routes require a valid token;
// destructive and catalogue-mutating routes additionally require the admin
// flag on that token.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	billController *controllers.BillController,
	courseController *controllers.CourseController,
	feeController *controllers.FeeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	user := router.Group("/user")
	{
		user.POST("/register", authController.Register)
		user.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	admission := authenticated.Group("/admission")
	{
		admission.POST("/create_new_student", studentController.CreateNewStudent)
		admission.GET("/get_all_student", studentController.GetAllStudents)
		admission.GET("/get_student_by_id/:id", studentController.GetStudentByID)
		admission.PUT("/update_student_by_id/:id", studentController.UpdateStudentByID)

		admissionAdmin := admission.Group("")
		admissionAdmin.Use(authMiddleware.AdminRequired())
		{
			admissionAdmin.DELETE("/delete_student_id/:id", studentController.DeleteStudentByID)
		}
	}

	bills := authenticated.Group("/bills")
	{
		bills.GET("/get_all_bills", billController.GetAllBills)
		bills.GET("/get_bill_by_id/:billId", billController.GetBillByID)

		billsAdmin := bills.Group("")
		billsAdmin.Use(authMiddleware.AdminRequired())
		{
			billsAdmin.POST("/create_new_bill", billController.CreateNewBill)
			billsAdmin.PUT("/update_bill_by_id", billController.UpdateBillByID)
			billsAdmin.DELETE("/delete_bill_by_id/:billId", billController.DeleteBillByID)
		}
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("/get_all_courses", courseController.GetAllCourses)
		courses.GET("/get_all_academic_years", courseController.GetAllAcademicYears)
		courses.GET("/get_all_course_names", courseController.GetAllCourseNames)
		courses.GET("/get_all_course_codes", courseController.GetAllCourseCodes)

		coursesAdmin := courses.Group("")
		coursesAdmin.Use(authMiddleware.AdminRequired())
		{
			coursesAdmin.POST("/create_course", courseController.CreateCourse)
			coursesAdmin.PUT("/update_course", courseController.UpdateCourse)
			coursesAdmin.DELETE("/delete_course/:courseId", courseController.DeleteCourse)
		}
	}

	fees := authenticated.Group("/fees")
	{
		fees.GET("/get_all_fees", feeController.GetAllFees)
		fees.GET("/get_fee/:feeId", feeController.GetFee)
		fees.POST("/get_fees_by_criteria", feeController.GetFeesByCriteria)

		feesAdmin := fees.Group("")
		feesAdmin.Use(authMiddleware.AdminRequired())
		{
			feesAdmin.POST("/create_fee", feeController.CreateFee)
			feesAdmin.PUT("/update_fee", feeController.UpdateFee)
			feesAdmin.DELETE("/delete_fee/:feeId", feeController.DeleteFee)
		}
	}
}
