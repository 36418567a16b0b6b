package usecase

import (
	"context"

	"github.com/xavierca1/agency-site/internal/entity"
)

type TeamMemberInput struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Bio         string `json:"bio"`
	ImageURL    string `json:"image_url"`
	LinkedinURL string `json:"linkedin_url"`
	Position    int    `json:"position"`
}

type TeamUseCase struct {
	Repo TeamRepositoryInterface
}

func NewTeamUseCase(repo TeamRepositoryInterface) *TeamUseCase {
	return &TeamUseCase{Repo: repo}
}

func (uc *TeamUseCase) List(ctx context.Context, activeOnly bool) ([]*entity.TeamMember, error) {
	members, err := uc.Repo.List(ctx, activeOnly)
	if err != nil {
		return nil, databaseError("failed to list team members", err)
	}
	return members, nil
}

func (uc *TeamUseCase) Create(ctx context.Context, input TeamMemberInput) (*entity.TeamMember, error) {
	m, err := entity.NewTeamMember(input.Name, input.Role, input.Bio, input.ImageURL, input.LinkedinURL, input.Position)
	if err != nil {
		return nil, validationError(err.Error())
	}
	if err := uc.Repo.Create(ctx, m); err != nil {
		return nil, databaseError("failed to create team member", err)
	}
	return m, nil
}

func (uc *TeamUseCase) Update(ctx context.Context, id string, patch entity.TeamMemberPatch) error {
	if id == "" {
		return validationError("id is required")
	}
	if err := patch.Validate(); err != nil {
		return validationError(err.Error())
	}
	if err := uc.Repo.Update(ctx, id, patch); err != nil {
		return mapRepoError(err, "team member")
	}
	return nil
}

func (uc *TeamUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return validationError("id is required")
	}
	if err := uc.Repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "team member")
	}
	return nil
}
