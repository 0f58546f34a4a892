package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/pkg/apperrors"
	"github.com/tvkcollege/admission-backend/internal/pkg/validation"
)

type fakeStudentStore struct {
	students  map[string]*models.Student
	creates   int
	lastPatch map[string]interface{}
	createErr error
	updateErr error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: map[string]*models.Student{}}
}

func (f *fakeStudentStore) Create(_ context.Context, s *models.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.creates++
	cp := *s
	f.students[s.StudentID] = &cp
	return nil
}

func (f *fakeStudentStore) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	if s, ok := f.students[studentID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeStudentStore) GetPage(_ context.Context, _ uint64, _ int) ([]models.Student, int64, error) {
	var out []models.Student
	for _, s := range f.students {
		out = append(out, *s)
	}
	return out, int64(len(f.students)), nil
}

func (f *fakeStudentStore) Update(_ context.Context, studentID string, patch map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	s, ok := f.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	f.lastPatch = patch
	if v, ok := patch["name"]; ok {
		name := v.(string)
		s.Name = &name
	}
	if v, ok := patch["photo_url"]; ok {
		url := v.(string)
		s.PhotoURL = &url
	}
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, studentID string) error {
	if _, ok := f.students[studentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, studentID)
	return nil
}

// fakePhotoStorage records saves and deletes without touching disk
type fakePhotoStorage struct {
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakePhotoStorage) SavePhoto(fh *multipart.FileHeader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	path := "/uploads/" + fh.Filename
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakePhotoStorage) DeleteFile(path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

func newStudentService(store *fakeStudentStore, photos *fakePhotoStorage) *StudentService {
	return NewStudentService(store, photos, zerolog.Nop())
}

func TestCreateStudentGeneratesIdentifiers(t *testing.T) {
	store := newFakeStudentStore()
	svc := newStudentService(store, &fakePhotoStorage{})

	name := "Asha K"
	student, err := svc.CreateStudent(context.Background(), &dto.StudentForm{Name: &name}, nil)
	require.NoError(t, err)

	assert.True(t, validation.IsValidUUID(student.StudentID))
	assert.True(t, validation.IsValidUUID(student.ApplicationNo))
	assert.True(t, validation.IsValidUUID(student.AdmissionNo))
	require.NotNil(t, student.Name)
	assert.Equal(t, "Asha K", *student.Name)
}

func TestCreateStudentEmptyFormIsLegal(t *testing.T) {
	store := newFakeStudentStore()
	svc := newStudentService(store, &fakePhotoStorage{})

	student, err := svc.CreateStudent(context.Background(), &dto.StudentForm{}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, student.StudentID)
	assert.Nil(t, student.Name)
}

func TestCreateStudentRejectsBadCategory(t *testing.T) {
	store := newFakeStudentStore()
	svc := newStudentService(store, &fakePhotoStorage{})

	bad := "XYZ"
	_, err := svc.CreateStudent(context.Background(), &dto.StudentForm{CommunalCategory: &bad}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Zero(t, store.creates)
}

func TestCreateStudentCleansUpPhotoOnStoreFailure(t *testing.T) {
	store := newFakeStudentStore()
	store.createErr = errors.New("connection reset")
	photos := &fakePhotoStorage{}
	svc := newStudentService(store, photos)

	photo := &multipart.FileHeader{Filename: "face.jpg"}
	_, err := svc.CreateStudent(context.Background(), &dto.StudentForm{}, photo)
	require.Error(t, err)

	require.Len(t, photos.saved, 1)
	assert.Equal(t, photos.saved, photos.deleted, "orphan upload must be removed")
}

func TestUpdateStudentSparsePatch(t *testing.T) {
	store := newFakeStudentStore()
	svc := newStudentService(store, &fakePhotoStorage{})

	original := "Asha K"
	city := "Madurai"
	student, err := svc.CreateStudent(context.Background(), &dto.StudentForm{
		Name:              &original,
		PermanentDistrict: &city,
	}, nil)
	require.NoError(t, err)

	renamed := "Asha Kumar"
	updated, err := svc.UpdateStudent(context.Background(), student.StudentID, &dto.StudentForm{Name: &renamed}, nil)
	require.NoError(t, err)

	require.Len(t, store.lastPatch, 1)
	assert.Equal(t, "Asha Kumar", store.lastPatch["name"])
	require.NotNil(t, updated.PermanentDistrict)
	assert.Equal(t, "Madurai", *updated.PermanentDistrict, "untouched field survives the patch")
}

func TestUpdateStudentUnknownID(t *testing.T) {
	svc := newStudentService(newFakeStudentStore(), &fakePhotoStorage{})

	name := "Nobody"
	_, err := svc.UpdateStudent(context.Background(), "missing-id", &dto.StudentForm{Name: &name}, nil)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestUpdateStudentReplacesPhoto(t *testing.T) {
	store := newFakeStudentStore()
	photos := &fakePhotoStorage{}
	svc := newStudentService(store, photos)

	student, err := svc.CreateStudent(context.Background(), &dto.StudentForm{},
		&multipart.FileHeader{Filename: "old.jpg"})
	require.NoError(t, err)

	_, err = svc.UpdateStudent(context.Background(), student.StudentID, &dto.StudentForm{},
		&multipart.FileHeader{Filename: "new.jpg"})
	require.NoError(t, err)

	assert.Contains(t, photos.deleted, "/uploads/old.jpg")

	got, err := svc.GetStudent(context.Background(), student.StudentID)
	require.NoError(t, err)
	require.NotNil(t, got.PhotoURL)
	assert.Equal(t, "/uploads/new.jpg", *got.PhotoURL)
}

func TestDeleteStudentRemovesPhoto(t *testing.T) {
	store := newFakeStudentStore()
	photos := &fakePhotoStorage{}
	svc := newStudentService(store, photos)

	student, err := svc.CreateStudent(context.Background(), &dto.StudentForm{},
		&multipart.FileHeader{Filename: "face.jpg"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStudent(context.Background(), student.StudentID))
	assert.Contains(t, photos.deleted, "/uploads/face.jpg")

	_, err = svc.GetStudent(context.Background(), student.StudentID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDeleteStudentWithoutPhoto(t *testing.T) {
	store := newFakeStudentStore()
	photos := &fakePhotoStorage{}
	svc := newStudentService(store, photos)

	student, err := svc.CreateStudent(context.Background(), &dto.StudentForm{}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStudent(context.Background(), student.StudentID))
	assert.Empty(t, photos.deleted)
}
