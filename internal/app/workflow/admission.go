// Package workflow drives the multi-step admission form: one student record
// is created on the first step and grown by partial updates on every step
// after that, so an abandoned session still leaves a resumable record.
package workflow

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/pkg/apperrors"
)

// Step identifies a position in the admission sequence
type Step int

const (
	StepPersonal Step = iota
	StepFamily
	StepAddress
	StepEducation
	StepCourse
	StepComplete
)

func (s Step) String() string {
	switch s {
	case StepPersonal:
		return "personal"
	case StepFamily:
		return "family"
	case StepAddress:
		return "address"
	case StepEducation:
		return "education"
	case StepCourse:
		return "course"
	case StepComplete:
		return "complete"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// StudentPersister is the slice of the student service the workflow needs.
// *services.StudentService satisfies it.
type StudentPersister interface {
	CreateStudent(ctx context.Context, form *dto.StudentForm, photo *multipart.FileHeader) (*models.Student, error)
	UpdateStudent(ctx context.Context, studentID string, form *dto.StudentForm, photo *multipart.FileHeader) (*models.Student, error)
	GetStudent(ctx context.Context, studentID string) (*models.Student, error)
}

// ValidationError carries per-field messages for one step. The workflow
// state is unchanged when it is returned.
type ValidationError struct {
	Step   Step
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %s: %d field(s) failed validation", e.Step, len(e.Fields))
}

// Workflow is a sequential admission session for a single student record.
// It is not safe for concurrent use; each form session owns one instance.
type Workflow struct {
	persister StudentPersister

	step      Step
	studentID string
	editing   bool

	// last accepted form per step, retained so Back/Next round trips
	// keep their values
	forms [StepComplete]*dto.StudentForm
}

// New starts a fresh admission session at the first step
func New(persister StudentPersister) *Workflow {
	return &Workflow{persister: persister, step: StepPersonal}
}

// NewEdit starts an edit session over an existing record. The record's
// values pre-populate every step's form, and every step issues updates; a
// create is never performed.
func NewEdit(ctx context.Context, persister StudentPersister, studentID string) (*Workflow, *models.Student, error) {
	student, err := persister.GetStudent(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}
	if student == nil {
		return nil, nil, apperrors.ErrStudentNotFound
	}

	w := &Workflow{
		persister: persister,
		step:      StepPersonal,
		studentID: student.StudentID,
		editing:   true,
	}
	for step, form := range formsFromStudent(student) {
		if !form.IsEmpty() {
			w.forms[step] = form
		}
	}
	return w, student, nil
}

// formsFromStudent splits a stored record back into per-step forms, the
// inverse of the field grouping each step collects.
func formsFromStudent(s *models.Student) [StepComplete]*dto.StudentForm {
	var dob *string
	if s.DateOfBirth != nil {
		v := s.DateOfBirth.Format("2006-01-02")
		dob = &v
	}

	var forms [StepComplete]*dto.StudentForm
	forms[StepPersonal] = &dto.StudentForm{
		DateOfAdmission:         s.DateOfAdmission,
		RollNumber:              s.RollNumber,
		Name:                    s.Name,
		ContactNo:               s.ContactNo,
		Gender:                  s.Gender,
		Nationality:             s.Nationality,
		AadharNo:                s.AadharNo,
		DateOfBirth:             dob,
		Caste:                   s.Caste,
		Religion:                s.Religion,
		Community:               s.Community,
		CommunalCategory:        s.CommunalCategory,
		PhysicallyChallenged:    &s.PhysicallyChallenged,
		ExServiceManChild:       &s.ExServiceManChild,
		BelongsToAndamanNicobar: &s.BelongsToAndamanNicobar,
	}
	forms[StepFamily] = &dto.StudentForm{
		FatherName:         s.FatherName,
		FatherContactNo:    s.FatherContactNo,
		FatherOccupation:   s.FatherOccupation,
		FatherAadharNo:     s.FatherAadharNo,
		MotherName:         s.MotherName,
		MotherContactNo:    s.MotherContactNo,
		MotherOccupation:   s.MotherOccupation,
		MotherAadharNo:     s.MotherAadharNo,
		GuardianName:       s.GuardianName,
		GuardianContactNo:  s.GuardianContactNo,
		GuardianOccupation: s.GuardianOccupation,
		GuardianAadharNo:   s.GuardianAadharNo,
	}
	forms[StepAddress] = &dto.StudentForm{
		PermanentAddressLine1:     s.PermanentAddressLine1,
		PermanentAddressLine2:     s.PermanentAddressLine2,
		PermanentTaluk:            s.PermanentTaluk,
		PermanentDistrict:         s.PermanentDistrict,
		PermanentState:            s.PermanentState,
		PermanentPinCode:          s.PermanentPinCode,
		CommunicationAddressLine1: s.CommunicationAddressLine1,
		CommunicationAddressLine2: s.CommunicationAddressLine2,
		CommunicationTaluk:        s.CommunicationTaluk,
		CommunicationDistrict:     s.CommunicationDistrict,
		CommunicationState:        s.CommunicationState,
		CommunicationPinCode:      s.CommunicationPinCode,
	}
	forms[StepEducation] = &dto.StudentForm{
		LastSchoolAttended: s.LastSchoolAttended,
		LastClassCompleted: s.LastClassCompleted,
		YearOfPassing:      s.YearOfPassing,
		EmisNumberOrTC:     s.EmisNumberOrTC,
	}
	forms[StepCourse] = &dto.StudentForm{
		CourseSelected:          s.CourseSelected,
		MediumOfInstruction:     s.MediumOfInstruction,
		HostelDayScholarOrBus:   s.HostelDayScholarOrBus,
		ExtraCurricularActivity: s.ExtraCurricularActivity,
	}
	return forms
}

// CurrentStep returns the step the session is waiting on
func (w *Workflow) CurrentStep() Step { return w.step }

// StudentID returns the server-issued record id, empty until the first
// step has been persisted in a non-edit session
func (w *Workflow) StudentID() string { return w.studentID }

// Form returns the last accepted form for a step, nil if none
func (w *Workflow) Form(step Step) *dto.StudentForm {
	if step < StepPersonal || step >= StepComplete {
		return nil
	}
	return w.forms[step]
}

// Back moves one step backwards without touching the store. Values already
// persisted stay persisted; re-advancing issues an update, never a create.
func (w *Workflow) Back() {
	if w.step > StepPersonal && w.step < StepComplete {
		w.step--
	}
}

// Next validates the form for the current step and persists it. On the very
// first successful persist of a fresh session the record is created and the
// server-issued student id retained; every other advance is a partial
// update keyed by that id. Validation or persistence failure leaves the
// step unchanged, so calling Next again with a corrected form is safe.
func (w *Workflow) Next(ctx context.Context, form *dto.StudentForm, photo *multipart.FileHeader) error {
	if w.step >= StepComplete {
		return fmt.Errorf("admission already complete")
	}

	if err := validateStep(w.step, form); err != nil {
		return err
	}

	if w.studentID == "" {
		student, err := w.persister.CreateStudent(ctx, form, photo)
		if err != nil {
			return err
		}
		w.studentID = student.StudentID
	} else {
		if _, err := w.persister.UpdateStudent(ctx, w.studentID, form, photo); err != nil {
			return err
		}
	}

	w.forms[w.step] = form
	w.step++
	return nil
}

// Submit finalizes the session from the last step. It is Next with the
// added guard that all earlier steps must already be done.
func (w *Workflow) Submit(ctx context.Context, form *dto.StudentForm, photo *multipart.FileHeader) error {
	if w.step != StepCourse {
		return fmt.Errorf("cannot submit from step %s", w.step)
	}
	return w.Next(ctx, form, photo)
}

// Complete reports whether every step has been persisted
func (w *Workflow) Complete() bool { return w.step == StepComplete }

func requireString(fields map[string]string, name string, v *string) {
	if v == nil || *v == "" {
		fields[name] = name + " is required"
	}
}

// validateStep checks the fields each step is responsible for. Fields
// outside the step's own set are passed through untouched; the service
// layer still runs its cross-cutting checks (category enum, date formats).
func validateStep(step Step, form *dto.StudentForm) error {
	fields := map[string]string{}
	if form == nil {
		form = &dto.StudentForm{}
	}

	switch step {
	case StepPersonal:
		requireString(fields, "name", form.Name)
		requireString(fields, "contactNo", form.ContactNo)
		requireString(fields, "gender", form.Gender)
		requireString(fields, "dateOfBirth", form.DateOfBirth)
	case StepFamily:
		requireString(fields, "fatherName", form.FatherName)
		requireString(fields, "motherName", form.MotherName)
	case StepAddress:
		requireString(fields, "permanentAddressLine1", form.PermanentAddressLine1)
		requireString(fields, "permanentDistrict", form.PermanentDistrict)
		requireString(fields, "permanentState", form.PermanentState)
		requireString(fields, "permanentPinCode", form.PermanentPinCode)
	case StepEducation:
		requireString(fields, "lastSchoolAttended", form.LastSchoolAttended)
		requireString(fields, "lastClassCompleted", form.LastClassCompleted)
		requireString(fields, "yearOfPassing", form.YearOfPassing)
	case StepCourse:
		if len(form.CourseSelected) == 0 {
			fields["courseSelected"] = "at least one course must be selected"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Step: step, Fields: fields}
	}
	return nil
}
