package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/pkg/apperrors"
	"github.com/tvkcollege/admission-backend/internal/pkg/validation"
)

type fakeFeeStore struct {
	created *models.Fee
	updated *models.Fee
	stored  *models.Fee

	byCriteria []models.Fee
	createErr  error
}

func (f *fakeFeeStore) Create(_ context.Context, fee *models.Fee) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = fee
	return nil
}

func (f *fakeFeeStore) GetByFeeID(_ context.Context, feeID string) (*models.Fee, error) {
	if f.stored != nil && f.stored.FeeID == feeID {
		cp := *f.stored
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeFeeStore) GetAllActive(_ context.Context) ([]models.Fee, error) {
	if f.stored != nil {
		return []models.Fee{*f.stored}, nil
	}
	return nil, nil
}

func (f *fakeFeeStore) GetByCriteria(_ context.Context, _, _, _ string) ([]models.Fee, error) {
	return f.byCriteria, nil
}

func (f *fakeFeeStore) Update(_ context.Context, fee *models.Fee) error {
	f.updated = fee
	return nil
}

func (f *fakeFeeStore) Delete(_ context.Context, _ string) error { return nil }

func newFeeService(store *fakeFeeStore) *FeeService {
	return NewFeeService(store, zerolog.Nop())
}

func TestCreateFeeComputesTotal(t *testing.T) {
	store := &fakeFeeStore{}
	svc := newFeeService(store)

	fee, err := svc.CreateFee(context.Background(), &dto.CreateFeeRequest{
		AcademicYear: "2024-2025",
		CourseCode:   "BSC-CS",
		FeeType:      "regular",
		Category:     "GEN",

		TuitionFees1: 1000,
		TuitionFees2: 500,
		ExamFees:     200,
		NotebookFees: 50,
		UniformFees:  25,
		OtherFees:    25,

		DueDate: "2025-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, 1800.0, fee.TotalFees)
	assert.True(t, fee.IsActive)
	assert.True(t, validation.IsValidUUID(fee.FeeID), "feeId should be a server-generated UUID")
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), fee.DueDate)
	require.NotNil(t, store.created)
	assert.Equal(t, fee.TotalFees, store.created.TotalFees)
}

func TestCreateFeeRejectsBadDueDate(t *testing.T) {
	store := &fakeFeeStore{}
	svc := newFeeService(store)

	_, err := svc.CreateFee(context.Background(), &dto.CreateFeeRequest{
		AcademicYear: "2024-2025",
		CourseCode:   "BSC-CS",
		FeeType:      "regular",
		Category:     "GEN",
		DueDate:      "30/06/2025",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Nil(t, store.created, "nothing should be persisted")
}

func TestUpdateFeeRecomputesTotalFromMergedState(t *testing.T) {
	stored := &models.Fee{
		FeeID:        "11111111-2222-4333-8444-555555555555",
		AcademicYear: "2024-2025",
		CourseCode:   "BSC-CS",
		FeeType:      "regular",
		Category:     "GEN",
		TuitionFees1: 1000,
		ExamFees:     200,
		TotalFees:    1200,
		DueDate:      time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
	}
	store := &fakeFeeStore{stored: stored}
	svc := newFeeService(store)

	newTuition := 1500.0
	fee, err := svc.UpdateFee(context.Background(), &dto.UpdateFeeRequest{
		FeeID:        stored.FeeID,
		TuitionFees1: &newTuition,
	})
	require.NoError(t, err)

	// only the patched component changed; the total reflects the merge
	assert.Equal(t, 1500.0, fee.TuitionFees1)
	assert.Equal(t, 200.0, fee.ExamFees)
	assert.Equal(t, 1700.0, fee.TotalFees)
	require.NotNil(t, store.updated)
	assert.Equal(t, 1700.0, store.updated.TotalFees)
}

func TestUpdateFeeUnknownID(t *testing.T) {
	svc := newFeeService(&fakeFeeStore{})

	_, err := svc.UpdateFee(context.Background(), &dto.UpdateFeeRequest{
		FeeID: "99999999-9999-4999-8999-999999999999",
	})
	assert.ErrorIs(t, err, apperrors.ErrFeeNotFound)
}

func TestGetFeesByCriteriaEmptyIsNotFound(t *testing.T) {
	svc := newFeeService(&fakeFeeStore{byCriteria: nil})

	_, err := svc.GetFeesByCriteria(context.Background(), &dto.FeeCriteriaRequest{
		AcademicYear: "2024-2025",
		CourseCode:   "BSC-CS",
		Category:     "GEN",
	})
	assert.ErrorIs(t, err, apperrors.ErrFeeNotFound)
}

func TestGetFeesByCriteriaReturnsMatches(t *testing.T) {
	match := models.Fee{FeeID: "11111111-2222-4333-8444-555555555555", TotalFees: 1200}
	svc := newFeeService(&fakeFeeStore{byCriteria: []models.Fee{match}})

	fees, err := svc.GetFeesByCriteria(context.Background(), &dto.FeeCriteriaRequest{
		AcademicYear: "2024-2025",
		CourseCode:   "BSC-CS",
		Category:     "GEN",
	})
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.Equal(t, match.FeeID, fees[0].FeeID)
}
