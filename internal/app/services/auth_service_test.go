package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tvkcollege/admission-backend/internal/app/models"
	"github.com/tvkcollege/admission-backend/internal/app/models/dto"
	"github.com/tvkcollege/admission-backend/internal/pkg/apperrors"
	"github.com/tvkcollege/admission-backend/internal/pkg/auth"
)

type fakeUserStore struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	if _, ok := f.users[u.Email]; ok {
		return apperrors.ErrEmailAlreadyExists
	}
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.users[u.Email] = &cp
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func newAuthService(store *fakeUserStore) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "admission-backend",
	})
	return NewAuthService(store, jwtService, zerolog.Nop())
}

func TestRegisterHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Clerk One",
		Email:    "clerk@college.edu",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-password", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "s3cret-password"))
	assert.False(t, user.Admin)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "clerk@college.edu",
		Password: "short",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, store.users)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	req := &dto.RegisterRequest{Email: "clerk@college.edu", Password: "s3cret-password"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginIssuesTokenWithAdminFlag(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	// Seeded admin account; registration cannot produce one.
	hashed, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), &models.User{
		FullName: "Administrator",
		Email:    "admin@college.edu",
		Password: hashed,
		Admin:    true,
	}))

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@college.edu",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.User.Admin)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestLoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "clerk@college.edu",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	_, wrongPass := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "clerk@college.edu",
		Password: "wrong",
	})
	_, unknown := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@college.edu",
		Password: "whatever",
	})

	assert.ErrorIs(t, wrongPass, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, apperrors.ErrInvalidCredentials)
}
