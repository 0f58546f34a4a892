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

// studentColumns lists every column in scan order. Keep in sync with scanStudent.
var studentColumns = []string{
	"id", "student_id", "application_no", "admission_no",
	"date_of_admission", "roll_number", "name", "contact_no", "gender",
	"nationality", "aadhar_no", "date_of_birth", "caste", "religion",
	"community", "communal_category",
	"father_name", "father_contact_no", "father_occupation", "father_aadhar_no",
	"mother_name", "mother_contact_no", "mother_occupation", "mother_aadhar_no",
	"guardian_name", "guardian_contact_no", "guardian_occupation", "guardian_aadhar_no",
	"permanent_address_line1", "permanent_address_line2", "permanent_taluk",
	"permanent_district", "permanent_state", "permanent_pin_code",
	"communication_address_line1", "communication_address_line2", "communication_taluk",
	"communication_district", "communication_state", "communication_pin_code",
	"last_school_attended", "last_class_completed", "year_of_passing", "emis_number_or_tc",
	"course_selected", "medium_of_instruction", "hostel_day_scholar_or_bus",
	"extra_curricular_activity",
	"physically_challenged", "ex_service_man_child", "belongs_to_andaman_nicobar",
	"photo_url",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.StudentID, &s.ApplicationNo, &s.AdmissionNo,
		&s.DateOfAdmission, &s.RollNumber, &s.Name, &s.ContactNo, &s.Gender,
		&s.Nationality, &s.AadharNo, &s.DateOfBirth, &s.Caste, &s.Religion,
		&s.Community, &s.CommunalCategory,
		&s.FatherName, &s.FatherContactNo, &s.FatherOccupation, &s.FatherAadharNo,
		&s.MotherName, &s.MotherContactNo, &s.MotherOccupation, &s.MotherAadharNo,
		&s.GuardianName, &s.GuardianContactNo, &s.GuardianOccupation, &s.GuardianAadharNo,
		&s.PermanentAddressLine1, &s.PermanentAddressLine2, &s.PermanentTaluk,
		&s.PermanentDistrict, &s.PermanentState, &s.PermanentPinCode,
		&s.CommunicationAddressLine1, &s.CommunicationAddressLine2, &s.CommunicationTaluk,
		&s.CommunicationDistrict, &s.CommunicationState, &s.CommunicationPinCode,
		&s.LastSchoolAttended, &s.LastClassCompleted, &s.YearOfPassing, &s.EmisNumberOrTC,
		&s.CourseSelected, &s.MediumOfInstruction, &s.HostelDayScholarOrBus,
		&s.ExtraCurricularActivity,
		&s.PhysicallyChallenged, &s.ExServiceManChild, &s.BelongsToAndamanNicobar,
		&s.PhotoURL,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// StudentRepository handles database operations for admission records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a student row. The student_id, application_no and
// admission_no must already be set on the model (the service issues them).
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	query := squirrel.Insert("students").
		Columns(studentColumns[1:]...).
		Values(
			s.StudentID, s.ApplicationNo, s.AdmissionNo,
			s.DateOfAdmission, s.RollNumber, s.Name, s.ContactNo, s.Gender,
			s.Nationality, s.AadharNo, s.DateOfBirth, s.Caste, s.Religion,
			s.Community, s.CommunalCategory,
			s.FatherName, s.FatherContactNo, s.FatherOccupation, s.FatherAadharNo,
			s.MotherName, s.MotherContactNo, s.MotherOccupation, s.MotherAadharNo,
			s.GuardianName, s.GuardianContactNo, s.GuardianOccupation, s.GuardianAadharNo,
			s.PermanentAddressLine1, s.PermanentAddressLine2, s.PermanentTaluk,
			s.PermanentDistrict, s.PermanentState, s.PermanentPinCode,
			s.CommunicationAddressLine1, s.CommunicationAddressLine2, s.CommunicationTaluk,
			s.CommunicationDistrict, s.CommunicationState, s.CommunicationPinCode,
			s.LastSchoolAttended, s.LastClassCompleted, s.YearOfPassing, s.EmisNumberOrTC,
			s.CourseSelected, s.MediumOfInstruction, s.HostelDayScholarOrBus,
			s.ExtraCurricularActivity,
			s.PhysicallyChallenged, s.ExServiceManChild, s.BelongsToAndamanNicobar,
			s.PhotoURL,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByStudentID retrieves a student by its natural identifier.
// Returns (nil, nil) when no row matches.
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	query := squirrel.Select(studentColumns...).
		From("students").
		Where("student_id = ?", studentID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetPage returns one page of students in insertion order plus the total
// count across the whole table.
func (r *StudentRepository) GetPage(ctx context.Context, offset uint64, limit int) ([]models.Student, int64, error) {
	query := squirrel.Select(studentColumns...).
		From("students").
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		students = append(students, *student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	return students, total, nil
}

// Update merges the present patch columns into an existing row.
// Omitted columns are untouched.
func (r *StudentRepository) Update(ctx context.Context, studentID string, patch map[string]interface{}) error {
	if len(patch) == 0 {
		return nil
	}

	query := squirrel.Update("students").
		SetMap(patch).
		Where("student_id = ?", studentID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student row by its natural identifier
func (r *StudentRepository) Delete(ctx context.Context, studentID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
