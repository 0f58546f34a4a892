package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/pkg/apperrors"
	"github.com/tvkcollege/admission-backend/internal/pkg/dberrors"
)

var courseColumns = []string{
	"id", "course_id", "academic_year", "course_code", "course_name", "is_active",
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(&c.ID, &c.CourseID, &c.AcademicYear, &c.CourseCode, &c.CourseName, &c.IsActive)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a course row; the courseId must already be set on the model
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	query := squirrel.Insert("courses").
		Columns(courseColumns[1:]...).
		Values(c.CourseID, c.AcademicYear, c.CourseCode, c.CourseName, c.IsActive).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID); err != nil {
		// courses carries two unique keys; a course_code collision is the
		// caller-fixable one, a course_id collision is a server id clash
		if dberrors.IsDuplicateConstraintError(err, "courses_course_code_key") {
			return apperrors.NewCustomError(apperrors.ErrCourseAlreadyExists, "Course code already in use")
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByCourseID retrieves a course by its natural identifier.
// Returns (nil, nil) when no row matches.
func (r *CourseRepository) GetByCourseID(ctx context.Context, courseID string) (*models.Course, error) {
	query := squirrel.Select(courseColumns...).
		From("courses").
		Where("course_id = ?", courseID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAllActive retrieves all active courses in insertion order
func (r *CourseRepository) GetAllActive(ctx context.Context) ([]models.Course, error) {
	query := squirrel.Select(courseColumns...).
		From("courses").
		Where("is_active = TRUE").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// distinctColumns are the columns exposed through picker endpoints
var distinctColumns = map[string]bool{
	"academic_year": true,
	"course_name":   true,
	"course_code":   true,
}

// Distinct returns the distinct values of a column among active courses
func (r *CourseRepository) Distinct(ctx context.Context, column string) ([]string, error) {
	if !distinctColumns[column] {
		return nil, fmt.Errorf("column %q not allowed for distinct queries", column)
	}

	query := squirrel.Select("DISTINCT " + column).
		From("courses").
		Where("is_active = TRUE").
		OrderBy(column).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

// Update merges the present patch columns into an existing course
func (r *CourseRepository) Update(ctx context.Context, courseID string, patch map[string]interface{}) error {
	if len(patch) == 0 {
		return nil
	}

	query := squirrel.Update("courses").
		SetMap(patch).
		Where("course_id = ?", courseID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course row by its natural identifier
func (r *CourseRepository) Delete(ctx context.Context, courseID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, courseID)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
