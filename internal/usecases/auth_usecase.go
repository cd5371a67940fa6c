package usecases

import (
	"context"
	"errors"

	"appforge.backend/internal/domain/entities"
	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/internal/domain/repositories"
	"appforge.backend/internal/observability"
	"appforge.backend/pkg/crypto"
	"appforge.backend/pkg/logger"
	"go.uber.org/zap"
)

// AuthUsecase authenticates API callers by key fingerprint and feeds
// every rejection into the ban tracker.
type AuthUsecase struct {
	devRepo    repositories.DeveloperRepository
	hasher     *crypto.KeyHasher
	banTracker *BanTracker
}

func NewAuthUsecase(
	devRepo repositories.DeveloperRepository,
	hasher *crypto.KeyHasher,
	banTracker *BanTracker,
) *AuthUsecase {
	return &AuthUsecase{
		devRepo:    devRepo,
		hasher:     hasher,
		banTracker: banTracker,
	}
}

// Authenticate resolves a raw API key to a developer identity.
//
// A banned IP is rejected before anything else and does not count as a
// new failure. Every other rejection branch — missing or short header,
// unknown fingerprint, inactive developer, fingerprint mismatch — is
// reported to the caller as the same generic invalid-key error and
// registers one failure for the IP.
func (u *AuthUsecase) Authenticate(ctx context.Context, ip, rawKey string) (*entities.AuthenticatedDev, error) {
	banned, remaining, err := u.banTracker.Check(ctx, ip)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if banned {
		return nil, domainerrors.IPBanned(int64(remaining.Seconds()))
	}

	if len(rawKey) < crypto.MinAPIKeyLength {
		return nil, u.reject(ctx, ip)
	}

	fingerprint := u.hasher.Fingerprint(rawKey)
	dev, err := u.devRepo.FindByKeyHash(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, u.reject(ctx, ip)
		}
		return nil, domainerrors.InternalError(err)
	}

	if !dev.IsActive || !crypto.FingerprintEqual(dev.APIKeyHash, fingerprint) {
		return nil, u.reject(ctx, ip)
	}

	return &entities.AuthenticatedDev{ID: dev.ID, Name: dev.Name, Role: dev.Role}, nil
}

// reject records the failure and returns the generic rejection. The
// request is already failing, so a counter-store error here is logged
// rather than replacing the auth outcome.
func (u *AuthUsecase) reject(ctx context.Context, ip string) error {
	observability.AuthFailuresTotal.Inc()
	if err := u.banTracker.RegisterFailure(ctx, ip); err != nil {
		logger.Error(ctx, "failed to register auth failure", zap.Error(err))
	}
	return domainerrors.InvalidAPIKey()
}
