package usecases

import (
	"context"
	"encoding/json"

	"appforge.backend/internal/domain/entities"
	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/internal/domain/repositories"
	"appforge.backend/internal/infrastructure/github"
	"appforge.backend/internal/observability"
	"appforge.backend/pkg/crypto"
	"appforge.backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// repoSecretNames maps the Actions secret names the build workflows
// expect onto the stored credential kinds. GITHUB_PAT itself is never
// pushed to the repository.
var repoSecretNames = map[string]entities.SecretType{
	"ASC_KEY_ID":         entities.SecretAppleASCKeyID,
	"ASC_ISSUER_ID":      entities.SecretAppleASCIssuerID,
	"ASC_KEY_P8_B64":     entities.SecretAppleASCP8B64,
	"UPLOAD_JKS_B64":     entities.SecretAndroidUploadJKSB64,
	"UPLOAD_JKS_PASS":    entities.SecretAndroidUploadJKSPass,
	"UPLOAD_KEY_ALIAS":   entities.SecretAndroidUploadKeyAlias,
	"UPLOAD_KEY_PASS":    entities.SecretAndroidUploadKeyPass,
	"GOOGLE_PLAY_SA_B64": entities.SecretGooglePlaySAB64,
}

// GithubUsecase drives the per-project GitHub Actions integration:
// storing the PAT, mirroring stored credentials into Actions repo
// secrets, and dispatching and inspecting workflow runs.
type GithubUsecase struct {
	projectRepo   repositories.ProjectRepository
	secretRepo    repositories.SecretRepository
	buildRepo     repositories.BuildRepository
	accessLogRepo repositories.AccessLogRepository
	vault         *crypto.Vault
	client        *github.Client
}

func NewGithubUsecase(
	projectRepo repositories.ProjectRepository,
	secretRepo repositories.SecretRepository,
	buildRepo repositories.BuildRepository,
	accessLogRepo repositories.AccessLogRepository,
	vault *crypto.Vault,
	client *github.Client,
) *GithubUsecase {
	return &GithubUsecase{
		projectRepo:   projectRepo,
		secretRepo:    secretRepo,
		buildRepo:     buildRepo,
		accessLogRepo: accessLogRepo,
		vault:         vault,
		client:        client,
	}
}

// StorePAT seals and stores the project's GitHub personal access token.
func (u *GithubUsecase) StorePAT(ctx context.Context, dev *entities.AuthenticatedDev, projectID uuid.UUID, pat string) error {
	if _, err := u.ownedProject(ctx, dev, projectID); err != nil {
		return err
	}
	if len(pat) < 10 {
		return domainerrors.BadRequest("pat required")
	}
	enc, err := u.vault.Seal(pat)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	return u.secretRepo.Upsert(ctx, projectID, entities.SecretGithubPAT, enc)
}

// SyncSecrets unseals every stored credential that has an Actions
// counterpart and uploads it as a repo secret. Missing credentials are
// skipped; the project must carry githubOwner/githubRepo and a PAT.
// Returns the number of secrets uploaded.
func (u *GithubUsecase) SyncSecrets(ctx context.Context, dev *entities.AuthenticatedDev, ip string, projectID uuid.UUID) (int, error) {
	p, err := u.linkedProject(ctx, dev, projectID)
	if err != nil {
		return 0, err
	}
	token, err := u.pat(ctx, projectID)
	if err != nil {
		return 0, err
	}

	secrets, err := u.secretRepo.ListByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	byType := make(map[entities.SecretType]string, len(secrets))
	for _, s := range secrets {
		byType[s.Type] = s.Enc
	}

	synced := 0
	for name, secretType := range repoSecretNames {
		enc, found := byType[secretType]
		if !found {
			continue
		}
		value, err := u.vault.Open(enc)
		if err != nil {
			observability.VaultOpenFailuresTotal.Inc()
			logger.Error(ctx, "secret decryption failed during sync",
				zap.String("project_id", projectID.String()),
				zap.String("type", string(secretType)),
				zap.Error(err),
			)
			return synced, domainerrors.InternalError(err)
		}
		if err := u.client.SetRepoSecret(ctx, token, p.GithubOwner, p.GithubRepo, name, value); err != nil {
			return synced, domainerrors.InternalError(err)
		}
		synced++
	}

	meta, _ := json.Marshal(map[string]string{"projectId": projectID.String()})
	if err := u.accessLogRepo.Append(ctx, &entities.AccessLogEntry{
		DevID:  dev.ID,
		IP:     ip,
		Action: entities.AuditGithubSyncSecrets,
		Meta:   string(meta),
	}); err != nil {
		return synced, err
	}
	return synced, nil
}

// DispatchInput parameterises a workflow_dispatch trigger.
type DispatchInput struct {
	WorkflowFile string            `json:"workflowFile" binding:"required"`
	Ref          string            `json:"ref"`
	Inputs       map[string]string `json:"inputs"`
}

// Dispatch triggers a workflow run and records a build row for it.
func (u *GithubUsecase) Dispatch(ctx context.Context, dev *entities.AuthenticatedDev, projectID uuid.UUID, input DispatchInput) (*entities.Build, error) {
	p, err := u.linkedProject(ctx, dev, projectID)
	if err != nil {
		return nil, err
	}
	token, err := u.pat(ctx, projectID)
	if err != nil {
		return nil, err
	}

	ref := input.Ref
	if ref == "" {
		ref = "main"
	}
	if err := u.client.DispatchWorkflow(ctx, token, p.GithubOwner, p.GithubRepo, input.WorkflowFile, ref, input.Inputs); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	build := &entities.Build{
		ProjectID: projectID,
		Platform:  "unknown",
		Workflow:  input.WorkflowFile,
		Ref:       ref,
		Status:    entities.BuildDispatched,
	}
	if err := u.buildRepo.Create(ctx, build); err != nil {
		return nil, err
	}
	return build, nil
}

// ListRuns returns the project's recent workflow runs from GitHub.
func (u *GithubUsecase) ListRuns(ctx context.Context, dev *entities.AuthenticatedDev, projectID uuid.UUID, workflow string) (json.RawMessage, error) {
	p, err := u.linkedProject(ctx, dev, projectID)
	if err != nil {
		return nil, err
	}
	token, err := u.pat(ctx, projectID)
	if err != nil {
		return nil, err
	}
	runs, err := u.client.ListRuns(ctx, token, p.GithubOwner, p.GithubRepo, workflow)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return runs, nil
}

// GetRun returns a single workflow run from GitHub.
func (u *GithubUsecase) GetRun(ctx context.Context, dev *entities.AuthenticatedDev, projectID uuid.UUID, runID int64) (json.RawMessage, error) {
	p, err := u.linkedProject(ctx, dev, projectID)
	if err != nil {
		return nil, err
	}
	token, err := u.pat(ctx, projectID)
	if err != nil {
		return nil, err
	}
	run, err := u.client.GetRun(ctx, token, p.GithubOwner, p.GithubRepo, runID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return run, nil
}

// ListBuilds returns the locally recorded dispatch history.
func (u *GithubUsecase) ListBuilds(ctx context.Context, dev *entities.AuthenticatedDev, projectID uuid.UUID) ([]*entities.Build, error) {
	if _, err := u.ownedProject(ctx, dev, projectID); err != nil {
		return nil, err
	}
	return u.buildRepo.ListByProject(ctx, projectID)
}

func (u *GithubUsecase) ownedProject(ctx context.Context, dev *entities.AuthenticatedDev, projectID uuid.UUID) (*entities.Project, error) {
	p, err := u.projectRepo.FindByIDAndOwner(ctx, projectID, dev.ID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("project not found")
		}
		return nil, err
	}
	return p, nil
}

func (u *GithubUsecase) linkedProject(ctx context.Context, dev *entities.AuthenticatedDev, projectID uuid.UUID) (*entities.Project, error) {
	p, err := u.ownedProject(ctx, dev, projectID)
	if err != nil {
		return nil, err
	}
	if p.GithubOwner == "" || p.GithubRepo == "" {
		return nil, domainerrors.BadRequest("githubOwner/githubRepo required on project")
	}
	return p, nil
}

func (u *GithubUsecase) pat(ctx context.Context, projectID uuid.UUID) (string, error) {
	s, err := u.secretRepo.Find(ctx, projectID, entities.SecretGithubPAT)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return "", domainerrors.BadRequest("missing github pat")
		}
		return "", err
	}
	token, err := u.vault.Open(s.Enc)
	if err != nil {
		observability.VaultOpenFailuresTotal.Inc()
		return "", domainerrors.InternalError(err)
	}
	return token, nil
}
