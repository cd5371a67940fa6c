package usecases

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"appforge.backend/internal/domain/entities"
	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/internal/domain/repositories"
	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ProjectUsecase covers the project CRUD surface. Every read or write
// beyond create is scoped to the owning developer.
type ProjectUsecase struct {
	projectRepo repositories.ProjectRepository
}

func NewProjectUsecase(projectRepo repositories.ProjectRepository) *ProjectUsecase {
	return &ProjectUsecase{projectRepo: projectRepo}
}

func (u *ProjectUsecase) Create(ctx context.Context, ownerDevID uuid.UUID, input *entities.CreateProjectInput) (*entities.Project, error) {
	if !strings.HasPrefix(input.Domain, "https://") {
		return nil, domainerrors.BadRequest("domain must be https")
	}
	if input.PublicSlug != "" {
		if !isValidSlug(input.PublicSlug) {
			return nil, domainerrors.BadRequest("publicSlug must be 3-32 chars, lowercase letters, numbers, or hyphen")
		}
		if err := u.checkSlugFree(ctx, input.PublicSlug, uuid.Nil); err != nil {
			return nil, err
		}
	}

	project := &entities.Project{
		OwnerDevID:     ownerDevID,
		Name:           input.Name,
		PublicSlug:     input.PublicSlug,
		Domain:         input.Domain,
		IOSBundleID:    input.IOSBundleID,
		IOSScheme:      input.IOSScheme,
		AndroidPackage: input.AndroidPackage,
	}
	if err := u.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *ProjectUsecase) List(ctx context.Context, ownerDevID uuid.UUID) ([]*entities.Project, error) {
	return u.projectRepo.ListByOwner(ctx, ownerDevID)
}

func (u *ProjectUsecase) Get(ctx context.Context, id, ownerDevID uuid.UUID) (*entities.Project, error) {
	project, err := u.projectRepo.FindByIDAndOwner(ctx, id, ownerDevID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("project not found")
		}
		return nil, err
	}
	return project, nil
}

func (u *ProjectUsecase) Update(ctx context.Context, id, ownerDevID uuid.UUID, input *entities.UpdateProjectInput) (*entities.Project, error) {
	project, err := u.Get(ctx, id, ownerDevID)
	if err != nil {
		return nil, err
	}

	if input.PublicSlug != nil && *input.PublicSlug != "" {
		if !isValidSlug(*input.PublicSlug) {
			return nil, domainerrors.BadRequest("publicSlug must be 3-32 chars, lowercase letters, numbers, or hyphen")
		}
		if err := u.checkSlugFree(ctx, *input.PublicSlug, id); err != nil {
			return nil, err
		}
		project.PublicSlug = *input.PublicSlug
	}
	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Domain != nil {
		if !strings.HasPrefix(*input.Domain, "https://") {
			return nil, domainerrors.BadRequest("domain must be https")
		}
		project.Domain = *input.Domain
	}
	if input.IOSBundleID != nil {
		project.IOSBundleID = *input.IOSBundleID
	}
	if input.IOSScheme != nil {
		project.IOSScheme = *input.IOSScheme
	}
	if input.AndroidPackage != nil {
		project.AndroidPackage = *input.AndroidPackage
	}
	if input.GithubOwner != nil {
		project.GithubOwner = *input.GithubOwner
	}
	if input.GithubRepo != nil {
		project.GithubRepo = *input.GithubRepo
	}

	if err := u.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *ProjectUsecase) Delete(ctx context.Context, id, ownerDevID uuid.UUID) error {
	if _, err := u.Get(ctx, id, ownerDevID); err != nil {
		return err
	}
	return u.projectRepo.Delete(ctx, id)
}

func (u *ProjectUsecase) checkSlugFree(ctx context.Context, slug string, selfID uuid.UUID) error {
	existing, err := u.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domainerrors.SlugTaken("publicSlug already in use")
	}
	return nil
}

func isValidSlug(slug string) bool {
	if len(slug) < 3 || len(slug) > 32 {
		return false
	}
	return slugPattern.MatchString(slug)
}
