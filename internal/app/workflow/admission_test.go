package workflow

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/pkg/apperrors"
)

type fakePersister struct {
	creates int
	updates int

	nextErr error
	missing bool
	student *models.Student
}

func (f *fakePersister) CreateStudent(_ context.Context, _ *dto.StudentForm, _ *multipart.FileHeader) (*models.Student, error) {
	if f.nextErr != nil {
		err := f.nextErr
		f.nextErr = nil
		return nil, err
	}
	f.creates++
	f.student = &models.Student{StudentID: "11111111-2222-4333-8444-555555555555"}
	return f.student, nil
}

func (f *fakePersister) UpdateStudent(_ context.Context, studentID string, _ *dto.StudentForm, _ *multipart.FileHeader) (*models.Student, error) {
	if f.nextErr != nil {
		err := f.nextErr
		f.nextErr = nil
		return nil, err
	}
	f.updates++
	return &models.Student{StudentID: studentID}, nil
}

func (f *fakePersister) GetStudent(_ context.Context, studentID string) (*models.Student, error) {
	if f.missing {
		return nil, nil
	}
	name := "Asha K"
	father := "Kumar"
	return &models.Student{
		StudentID:  studentID,
		Name:       &name,
		FatherName: &father,
	}, nil
}

func str(s string) *string { return &s }

func personalForm() *dto.StudentForm {
	return &dto.StudentForm{
		Name:        str("Asha K"),
		ContactNo:   str("9876543210"),
		Gender:      str("F"),
		DateOfBirth: str("2006-04-12"),
	}
}

func familyForm() *dto.StudentForm {
	return &dto.StudentForm{FatherName: str("Kumar"), MotherName: str("Lakshmi")}
}

func addressForm() *dto.StudentForm {
	return &dto.StudentForm{
		PermanentAddressLine1: str("12 Main St"),
		PermanentDistrict:     str("Madurai"),
		PermanentState:        str("Tamil Nadu"),
		PermanentPinCode:      str("625001"),
	}
}

func educationForm() *dto.StudentForm {
	return &dto.StudentForm{
		LastSchoolAttended: str("Govt HSS"),
		LastClassCompleted: str("XII"),
		YearOfPassing:      str("2024"),
	}
}

func courseForm() *dto.StudentForm {
	return &dto.StudentForm{CourseSelected: []string{"BSC-CS"}}
}

func TestWorkflowHappyPath(t *testing.T) {
	p := &fakePersister{}
	w := New(p)
	ctx := context.Background()

	require.NoError(t, w.Next(ctx, personalForm(), nil))
	assert.Equal(t, StepFamily, w.CurrentStep())
	assert.NotEmpty(t, w.StudentID(), "id is issued on the first step")

	require.NoError(t, w.Next(ctx, familyForm(), nil))
	require.NoError(t, w.Next(ctx, addressForm(), nil))
	require.NoError(t, w.Next(ctx, educationForm(), nil))
	require.NoError(t, w.Submit(ctx, courseForm(), nil))

	assert.True(t, w.Complete())
	assert.Equal(t, 1, p.creates, "exactly one create across the whole flow")
	assert.Equal(t, 4, p.updates)
}

func TestWorkflowValidationKeepsState(t *testing.T) {
	p := &fakePersister{}
	w := New(p)
	ctx := context.Background()

	err := w.Next(ctx, &dto.StudentForm{Name: str("Asha K")}, nil)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, StepPersonal, verr.Step)
	assert.Contains(t, verr.Fields, "contactNo")
	assert.NotContains(t, verr.Fields, "name")

	assert.Equal(t, StepPersonal, w.CurrentStep())
	assert.Zero(t, p.creates, "nothing persisted on validation failure")
}

func TestWorkflowPersistFailureIsRetryable(t *testing.T) {
	p := &fakePersister{nextErr: errors.New("connection refused")}
	w := New(p)
	ctx := context.Background()

	require.Error(t, w.Next(ctx, personalForm(), nil))
	assert.Equal(t, StepPersonal, w.CurrentStep())
	assert.Empty(t, w.StudentID())

	// same call again succeeds and behaves like the first attempt
	require.NoError(t, w.Next(ctx, personalForm(), nil))
	assert.Equal(t, StepFamily, w.CurrentStep())
	assert.Equal(t, 1, p.creates)
}

func TestWorkflowBackDoesNotPersistOrRecreate(t *testing.T) {
	p := &fakePersister{}
	w := New(p)
	ctx := context.Background()

	require.NoError(t, w.Next(ctx, personalForm(), nil))
	require.NoError(t, w.Next(ctx, familyForm(), nil))

	w.Back()
	assert.Equal(t, StepFamily, w.CurrentStep())
	assert.NotNil(t, w.Form(StepFamily), "values retained across Back")

	updatesBefore := p.updates
	require.NoError(t, w.Next(ctx, familyForm(), nil))
	assert.Equal(t, 1, p.creates, "re-advancing never creates a second record")
	assert.Equal(t, updatesBefore+1, p.updates)
}

func TestWorkflowBackStopsAtFirstStep(t *testing.T) {
	w := New(&fakePersister{})
	w.Back()
	assert.Equal(t, StepPersonal, w.CurrentStep())
}

func TestEditWorkflowNeverCreates(t *testing.T) {
	p := &fakePersister{}
	ctx := context.Background()

	w, student, err := NewEdit(ctx, p, "11111111-2222-4333-8444-555555555555")
	require.NoError(t, err)
	require.NotNil(t, student.Name)

	// the loaded record pre-populates step forms before any Next
	personal := w.Form(StepPersonal)
	require.NotNil(t, personal)
	assert.Equal(t, "Asha K", *personal.Name)
	family := w.Form(StepFamily)
	require.NotNil(t, family)
	assert.Equal(t, "Kumar", *family.FatherName)
	assert.Nil(t, w.Form(StepEducation), "steps with no stored values stay blank")

	require.NoError(t, w.Next(ctx, personalForm(), nil))
	require.NoError(t, w.Next(ctx, familyForm(), nil))
	require.NoError(t, w.Next(ctx, addressForm(), nil))
	require.NoError(t, w.Next(ctx, educationForm(), nil))
	require.NoError(t, w.Submit(ctx, courseForm(), nil))

	assert.True(t, w.Complete())
	assert.Zero(t, p.creates)
	assert.Equal(t, 5, p.updates)
}

func TestEditWorkflowUnknownStudent(t *testing.T) {
	p := &fakePersister{missing: true}

	w, student, err := NewEdit(context.Background(), p, "11111111-2222-4333-8444-555555555555")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Nil(t, w)
	assert.Nil(t, student)
}

func TestSubmitOnlyFromLastStep(t *testing.T) {
	w := New(&fakePersister{})
	err := w.Submit(context.Background(), courseForm(), nil)
	require.Error(t, err)
	assert.Equal(t, StepPersonal, w.CurrentStep())
}

func TestCourseStepRequiresSelection(t *testing.T) {
	p := &fakePersister{}
	w := New(p)
	ctx := context.Background()

	require.NoError(t, w.Next(ctx, personalForm(), nil))
	require.NoError(t, w.Next(ctx, familyForm(), nil))
	require.NoError(t, w.Next(ctx, addressForm(), nil))
	require.NoError(t, w.Next(ctx, educationForm(), nil))

	err := w.Submit(ctx, &dto.StudentForm{}, nil)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "courseSelected")
	assert.Equal(t, StepCourse, w.CurrentStep())
}
