package usecases

import (
	"context"
	"encoding/json"

	"appforge.backend/internal/domain/entities"
	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/internal/domain/repositories"
	"appforge.backend/internal/observability"
	"appforge.backend/pkg/crypto"
	"appforge.backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CredentialUsecase stores and serves per-project secrets. Values are
// sealed before they reach the persistent store and only unsealed on
// download; every upsert and download appends an audit entry.
//
// Callers must have verified project ownership before invoking any of
// these operations.
type CredentialUsecase struct {
	secretRepo    repositories.SecretRepository
	accessLogRepo repositories.AccessLogRepository
	vault         *crypto.Vault
}

func NewCredentialUsecase(
	secretRepo repositories.SecretRepository,
	accessLogRepo repositories.AccessLogRepository,
	vault *crypto.Vault,
) *CredentialUsecase {
	return &CredentialUsecase{
		secretRepo:    secretRepo,
		accessLogRepo: accessLogRepo,
		vault:         vault,
	}
}

// Upsert seals value and writes the single row for (projectID, type).
// Repeated calls converge on the same stored plaintext; the ciphertext
// bytes differ each call because every seal draws a fresh nonce.
func (u *CredentialUsecase) Upsert(ctx context.Context, dev *entities.AuthenticatedDev, ip string, projectID uuid.UUID, secretType entities.SecretType, value string) error {
	if value == "" {
		return domainerrors.BadRequest("value required")
	}

	enc, err := u.vault.Seal(value)
	if err != nil {
		return domainerrors.InternalError(err)
	}

	if err := u.secretRepo.Upsert(ctx, projectID, secretType, enc); err != nil {
		return err
	}

	return u.audit(ctx, dev.ID, ip, entities.AuditSecretUpsert, projectID, secretType)
}

// List returns secret metadata only; decrypted values never leave
// Download.
func (u *CredentialUsecase) List(ctx context.Context, projectID uuid.UUID) ([]*entities.SecretMetadata, error) {
	return u.secretRepo.ListMetadata(ctx, projectID)
}

// Download unseals the stored value. A missing row is NotFound; a
// failed decryption is fatal to the request and surfaces as a generic
// internal error, with the detail kept server-side.
func (u *CredentialUsecase) Download(ctx context.Context, dev *entities.AuthenticatedDev, ip string, projectID uuid.UUID, secretType entities.SecretType) (string, error) {
	sec, err := u.secretRepo.Find(ctx, projectID, secretType)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return "", domainerrors.NotFound("secret not found")
		}
		return "", err
	}

	value, err := u.vault.Open(sec.Enc)
	if err != nil {
		observability.VaultOpenFailuresTotal.Inc()
		logger.Error(ctx, "secret decryption failed",
			zap.String("project_id", projectID.String()),
			zap.String("type", string(secretType)),
			zap.Error(err),
		)
		return "", domainerrors.InternalError(err)
	}

	if err := u.audit(ctx, dev.ID, ip, entities.AuditSecretDownload, projectID, secretType); err != nil {
		return "", err
	}
	return value, nil
}

func (u *CredentialUsecase) audit(ctx context.Context, devID uuid.UUID, ip string, action entities.AuditAction, projectID uuid.UUID, secretType entities.SecretType) error {
	meta, _ := json.Marshal(map[string]string{
		"projectId": projectID.String(),
		"type":      string(secretType),
	})
	return u.accessLogRepo.Append(ctx, &entities.AccessLogEntry{
		DevID:  devID,
		IP:     ip,
		Action: action,
		Meta:   string(meta),
	})
}
