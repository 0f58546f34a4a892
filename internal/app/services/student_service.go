package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/pkg/apperrors"
	"github.com/tvkcollege/admission-backend/internal/pkg/filestorage"
	"github.com/tvkcollege/admission-backend/internal/pkg/helpers"
	"github.com/tvkcollege/admission-backend/internal/pkg/validation"
)

const dateLayout = "2006-01-02"

// StudentStore is the persistence surface the student service needs
type StudentStore interface {
	Create(ctx context.Context, s *models.Student) error
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetPage(ctx context.Context, offset uint64, limit int) ([]models.Student, int64, error)
	Update(ctx context.Context, studentID string, patch map[string]interface{}) error
	Delete(ctx context.Context, studentID string) error
}

// StudentService handles admission record operations
type StudentService struct {
	students StudentStore
	photos   filestorage.PhotoStorage
	logger   zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, photos filestorage.PhotoStorage, logger zerolog.Logger) *StudentService {
	return &StudentService{
		students: students,
		photos:   photos,
		logger:   logger,
	}
}

// CreateStudent creates a new admission record. All three identifiers are
// generated server-side; the form may be arbitrarily sparse since records
// grow across workflow steps.
func (s *StudentService) CreateStudent(ctx context.Context, form *dto.StudentForm, photo *multipart.FileHeader) (*models.Student, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID:     uuid.New().String(),
		ApplicationNo: uuid.New().String(),
		AdmissionNo:   uuid.New().String(),
	}
	if err := applyForm(student, form); err != nil {
		return nil, err
	}

	if photo != nil {
		photoURL, err := s.photos.SavePhoto(photo)
		if err != nil {
			return nil, err
		}
		student.PhotoURL = &photoURL
	}

	if err := s.students.Create(ctx, student); err != nil {
		if student.PhotoURL != nil {
			if delErr := s.photos.DeleteFile(*student.PhotoURL); delErr != nil {
				s.logger.Warn().Err(delErr).Str("path", *student.PhotoURL).Msg("Failed to clean up orphan photo")
			}
		}
		return nil, err
	}

	s.logger.Info().Str("studentId", student.StudentID).Msg("Student record created")
	return student, nil
}

// GetStudents returns one page of records plus the overall total
func (s *StudentService) GetStudents(ctx context.Context, page, limit int) ([]models.Student, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, limit)
	return s.students.GetPage(ctx, offset, limit)
}

// GetStudent retrieves a single record by its studentId
func (s *StudentService) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.students.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// UpdateStudent applies a sparse patch to an existing record. Omitted form
// fields are left untouched. A new photo replaces the stored one and the
// old file is removed after the row update succeeds.
func (s *StudentService) UpdateStudent(ctx context.Context, studentID string, form *dto.StudentForm, photo *multipart.FileHeader) (*models.Student, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	existing, err := s.students.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	patch, err := buildStudentPatch(form)
	if err != nil {
		return nil, err
	}

	var newPhotoURL string
	if photo != nil {
		newPhotoURL, err = s.photos.SavePhoto(photo)
		if err != nil {
			return nil, err
		}
		patch["photo_url"] = newPhotoURL
	}

	if len(patch) == 0 {
		return existing, nil
	}

	if err := s.students.Update(ctx, studentID, patch); err != nil {
		if newPhotoURL != "" {
			if delErr := s.photos.DeleteFile(newPhotoURL); delErr != nil {
				s.logger.Warn().Err(delErr).Str("path", newPhotoURL).Msg("Failed to clean up orphan photo")
			}
		}
		return nil, err
	}

	if newPhotoURL != "" && existing.PhotoURL != nil && *existing.PhotoURL != newPhotoURL {
		if delErr := s.photos.DeleteFile(*existing.PhotoURL); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", *existing.PhotoURL).Msg("Failed to remove replaced photo")
		}
	}

	return s.students.GetByStudentID(ctx, studentID)
}

// DeleteStudent removes a record and its photo file, if any
func (s *StudentService) DeleteStudent(ctx context.Context, studentID string) error {
	existing, err := s.students.GetByStudentID(ctx, studentID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrStudentNotFound
	}

	if err := s.students.Delete(ctx, studentID); err != nil {
		return err
	}

	if existing.PhotoURL != nil {
		if delErr := s.photos.DeleteFile(*existing.PhotoURL); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", *existing.PhotoURL).Msg("Failed to remove photo of deleted student")
		}
	}

	s.logger.Info().Str("studentId", studentID).Msg("Student record deleted")
	return nil
}

func validateForm(form *dto.StudentForm) error {
	if form == nil {
		return nil
	}
	if form.CommunalCategory != nil && !validation.IsValidCommunalCategory(*form.CommunalCategory) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("communalCategory must be one of %v", validation.CommunalCategories))
	}
	return nil
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("%s must be in YYYY-MM-DD format", field))
	}
	return t, nil
}

// applyForm copies the present form values onto a fresh student model
func applyForm(student *models.Student, form *dto.StudentForm) error {
	if form == nil {
		return nil
	}

	student.DateOfAdmission = form.DateOfAdmission
	student.RollNumber = form.RollNumber
	student.Name = form.Name
	student.ContactNo = form.ContactNo
	student.Gender = form.Gender
	student.Nationality = form.Nationality
	student.AadharNo = form.AadharNo
	student.Caste = form.Caste
	student.Religion = form.Religion
	student.Community = form.Community
	student.CommunalCategory = form.CommunalCategory

	if form.DateOfBirth != nil {
		dob, err := parseDate(*form.DateOfBirth, "dateOfBirth")
		if err != nil {
			return err
		}
		student.DateOfBirth = &dob
	}

	student.FatherName = form.FatherName
	student.FatherContactNo = form.FatherContactNo
	student.FatherOccupation = form.FatherOccupation
	student.FatherAadharNo = form.FatherAadharNo
	student.MotherName = form.MotherName
	student.MotherContactNo = form.MotherContactNo
	student.MotherOccupation = form.MotherOccupation
	student.MotherAadharNo = form.MotherAadharNo
	student.GuardianName = form.GuardianName
	student.GuardianContactNo = form.GuardianContactNo
	student.GuardianOccupation = form.GuardianOccupation
	student.GuardianAadharNo = form.GuardianAadharNo

	student.PermanentAddressLine1 = form.PermanentAddressLine1
	student.PermanentAddressLine2 = form.PermanentAddressLine2
	student.PermanentTaluk = form.PermanentTaluk
	student.PermanentDistrict = form.PermanentDistrict
	student.PermanentState = form.PermanentState
	student.PermanentPinCode = form.PermanentPinCode

	student.CommunicationAddressLine1 = form.CommunicationAddressLine1
	student.CommunicationAddressLine2 = form.CommunicationAddressLine2
	student.CommunicationTaluk = form.CommunicationTaluk
	student.CommunicationDistrict = form.CommunicationDistrict
	student.CommunicationState = form.CommunicationState
	student.CommunicationPinCode = form.CommunicationPinCode

	student.LastSchoolAttended = form.LastSchoolAttended
	student.LastClassCompleted = form.LastClassCompleted
	student.YearOfPassing = form.YearOfPassing
	student.EmisNumberOrTC = form.EmisNumberOrTC

	student.CourseSelected = form.CourseSelected
	student.MediumOfInstruction = form.MediumOfInstruction
	student.HostelDayScholarOrBus = form.HostelDayScholarOrBus
	student.ExtraCurricularActivity = form.ExtraCurricularActivity

	if form.PhysicallyChallenged != nil {
		student.PhysicallyChallenged = *form.PhysicallyChallenged
	}
	if form.ExServiceManChild != nil {
		student.ExServiceManChild = *form.ExServiceManChild
	}
	if form.BelongsToAndamanNicobar != nil {
		student.BelongsToAndamanNicobar = *form.BelongsToAndamanNicobar
	}

	return nil
}

// buildStudentPatch converts the sparse form into a column->value map.
// Only present fields make it into the map, so the repository update
// never clobbers values the caller did not send.
func buildStudentPatch(form *dto.StudentForm) (map[string]interface{}, error) {
	patch := map[string]interface{}{}
	if form == nil {
		return patch, nil
	}

	setString := func(column string, v *string) {
		if v != nil {
			patch[column] = *v
		}
	}
	setBool := func(column string, v *bool) {
		if v != nil {
			patch[column] = *v
		}
	}

	setString("date_of_admission", form.DateOfAdmission)
	setString("roll_number", form.RollNumber)
	setString("name", form.Name)
	setString("contact_no", form.ContactNo)
	setString("gender", form.Gender)
	setString("nationality", form.Nationality)
	setString("aadhar_no", form.AadharNo)
	setString("caste", form.Caste)
	setString("religion", form.Religion)
	setString("community", form.Community)
	setString("communal_category", form.CommunalCategory)

	if form.DateOfBirth != nil {
		dob, err := parseDate(*form.DateOfBirth, "dateOfBirth")
		if err != nil {
			return nil, err
		}
		patch["date_of_birth"] = dob
	}

	setString("father_name", form.FatherName)
	setString("father_contact_no", form.FatherContactNo)
	setString("father_occupation", form.FatherOccupation)
	setString("father_aadhar_no", form.FatherAadharNo)
	setString("mother_name", form.MotherName)
	setString("mother_contact_no", form.MotherContactNo)
	setString("mother_occupation", form.MotherOccupation)
	setString("mother_aadhar_no", form.MotherAadharNo)
	setString("guardian_name", form.GuardianName)
	setString("guardian_contact_no", form.GuardianContactNo)
	setString("guardian_occupation", form.GuardianOccupation)
	setString("guardian_aadhar_no", form.GuardianAadharNo)

	setString("permanent_address_line1", form.PermanentAddressLine1)
	setString("permanent_address_line2", form.PermanentAddressLine2)
	setString("permanent_taluk", form.PermanentTaluk)
	setString("permanent_district", form.PermanentDistrict)
	setString("permanent_state", form.PermanentState)
	setString("permanent_pin_code", form.PermanentPinCode)

	setString("communication_address_line1", form.CommunicationAddressLine1)
	setString("communication_address_line2", form.CommunicationAddressLine2)
	setString("communication_taluk", form.CommunicationTaluk)
	setString("communication_district", form.CommunicationDistrict)
	setString("communication_state", form.CommunicationState)
	setString("communication_pin_code", form.CommunicationPinCode)

	setString("last_school_attended", form.LastSchoolAttended)
	setString("last_class_completed", form.LastClassCompleted)
	setString("year_of_passing", form.YearOfPassing)
	setString("emis_number_or_tc", form.EmisNumberOrTC)

	if len(form.CourseSelected) > 0 {
		patch["course_selected"] = form.CourseSelected
	}
	setString("medium_of_instruction", form.MediumOfInstruction)
	setString("hostel_day_scholar_or_bus", form.HostelDayScholarOrBus)
	setString("extra_curricular_activity", form.ExtraCurricularActivity)

	setBool("physically_challenged", form.PhysicallyChallenged)
	setBool("ex_service_man_child", form.ExServiceManChild)
	setBool("belongs_to_andaman_nicobar", form.BelongsToAndamanNicobar)

	return patch, nil
}
