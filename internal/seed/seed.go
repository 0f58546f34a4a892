package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/tvkcollege/admission-backend/internal/app/models"
	appRepos "github.com/tvkcollege/admission-backend/internal/app/repositories"
	"github.com/tvkcollege/admission-backend/internal/config"
	"github.com/tvkcollege/admission-backend/internal/pkg/auth"
)

// CreateDefaultData seeds the default admin account so a fresh deployment
// can log in and register the rest of the staff. Existing accounts are
// never touched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	email := cfg.Seed.AdminEmail
	if email == "" || cfg.Seed.AdminPassword == "" {
		lgr.Debug().Msg("No seed admin credentials configured, skipping default data")
		return nil
	}

	existing, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	lgr.Info().Str("email", email).Msg("Creating default admin user...")

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		FullName: "Administrator",
		Email:    email,
		Password: hashed,
		Admin:    true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Str("email", email).Msg("Default admin user created")
	return nil
}
