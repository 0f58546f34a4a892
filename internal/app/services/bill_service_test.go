package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/pkg/apperrors"
	"github.com/tvkcollege/admission-backend/internal/pkg/validation"
)

type fakeBillStore struct {
	calls   int
	created *models.Bill
	stored  *models.Bill
	patch   map[string]interface{}
}

func (f *fakeBillStore) Create(_ context.Context, b *models.Bill) error {
	f.calls++
	f.created = b
	return nil
}

func (f *fakeBillStore) GetByBillID(_ context.Context, billID string) (*models.Bill, error) {
	f.calls++
	if f.stored != nil && f.stored.BillID == billID {
		cp := *f.stored
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeBillStore) GetPage(_ context.Context, _ uint64, _ int) ([]models.Bill, int64, error) {
	f.calls++
	return nil, 0, nil
}

func (f *fakeBillStore) Update(_ context.Context, _ string, patch map[string]interface{}) error {
	f.calls++
	f.patch = patch
	return nil
}

func (f *fakeBillStore) Delete(_ context.Context, _ string) error {
	f.calls++
	return nil
}

func newBillService(store *fakeBillStore) *BillService {
	return NewBillService(store, zerolog.Nop())
}

func float64Ptr(v float64) *float64 { return &v }
func stringPtr(v string) *string    { return &v }

func TestCreateBillGeneratesUUID(t *testing.T) {
	store := &fakeBillStore{}
	svc := newBillService(store)

	bill, err := svc.CreateBill(context.Background(), &dto.CreateBillRequest{
		AcademicYear: "2024-2025",
		Department:   "Science",
		RollNo:       "A-101",
		Name:         "Test Student",
		FeesDetails:  &dto.FeesDetailsRequest{OldFees: float64Ptr(100), NewFees: float64Ptr(2500)},
	})
	require.NoError(t, err)

	assert.True(t, validation.IsValidUUID(bill.BillID))
	assert.Equal(t, 100.0, bill.FeesDetails.OldFees)
	assert.Equal(t, 2500.0, bill.FeesDetails.NewFees)
	assert.Zero(t, bill.Discount)
	assert.Zero(t, bill.Fine)
}

func TestBillIDValidatedBeforeStoreAccess(t *testing.T) {
	badIDs := []string{"", "not-a-uuid", "12345", "11111111-2222-3333-4444"}

	for _, id := range badIDs {
		store := &fakeBillStore{}
		svc := newBillService(store)

		_, err := svc.GetBill(context.Background(), id)
		assert.ErrorIs(t, err, apperrors.ErrInvalidBillID, "id %q", id)

		err = svc.DeleteBill(context.Background(), id)
		assert.ErrorIs(t, err, apperrors.ErrInvalidBillID, "id %q", id)

		_, err = svc.UpdateBill(context.Background(), &dto.UpdateBillRequest{BillID: id})
		assert.ErrorIs(t, err, apperrors.ErrInvalidBillID, "id %q", id)

		assert.Zero(t, store.calls, "store must not be touched for id %q", id)
	}
}

func TestGetBillNotFound(t *testing.T) {
	svc := newBillService(&fakeBillStore{})

	_, err := svc.GetBill(context.Background(), "11111111-2222-4333-8444-555555555555")
	assert.ErrorIs(t, err, apperrors.ErrBillNotFound)
}

func TestUpdateBillSparsePatch(t *testing.T) {
	stored := &models.Bill{
		BillID:       "11111111-2222-4333-8444-555555555555",
		AcademicYear: "2024-2025",
		Department:   "Science",
		RollNo:       "A-101",
		Name:         "Test Student",
	}
	store := &fakeBillStore{stored: stored}
	svc := newBillService(store)

	_, err := svc.UpdateBill(context.Background(), &dto.UpdateBillRequest{
		BillID: stored.BillID,
		Fine:   float64Ptr(75),
	})
	require.NoError(t, err)

	// only the present field rides in the patch
	require.Len(t, store.patch, 1)
	assert.Equal(t, 75.0, store.patch["fine"])
}

func TestUpdateBillNestedFees(t *testing.T) {
	stored := &models.Bill{BillID: "11111111-2222-4333-8444-555555555555"}
	store := &fakeBillStore{stored: stored}
	svc := newBillService(store)

	_, err := svc.UpdateBill(context.Background(), &dto.UpdateBillRequest{
		BillID:      stored.BillID,
		Department:  stringPtr("Arts"),
		FeesDetails: &dto.FeesDetailsRequest{OldFees: float64Ptr(10), NewFees: float64Ptr(20)},
	})
	require.NoError(t, err)

	assert.Equal(t, "Arts", store.patch["department"])
	assert.Equal(t, 10.0, store.patch["old_fees"])
	assert.Equal(t, 20.0, store.patch["new_fees"])
}
