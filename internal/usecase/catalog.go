package usecase

import (
	"context"

	"github.com/xavierca1/agency-site/internal/entity"
)

type ServiceInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Category    string   `json:"category"`
	Price       string   `json:"price"`
	Featured    bool     `json:"featured"`
	Points      []string `json:"points"`
	SubServices []string `json:"sub_services"`
}

// ServiceUseCase cuida do catálogo de serviços: leitura pública e CRUD do admin.
type ServiceUseCase struct {
	Repo ServiceRepositoryInterface
}

func NewServiceUseCase(repo ServiceRepositoryInterface) *ServiceUseCase {
	return &ServiceUseCase{Repo: repo}
}

func (uc *ServiceUseCase) List(ctx context.Context, activeOnly bool) ([]*entity.Service, error) {
	services, err := uc.Repo.List(ctx, activeOnly)
	if err != nil {
		return nil, databaseError("failed to list services", err)
	}
	return services, nil
}

func (uc *ServiceUseCase) Get(ctx context.Context, id string) (*entity.Service, error) {
	s, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "service")
	}
	return s, nil
}

func (uc *ServiceUseCase) Create(ctx context.Context, input ServiceInput) (*entity.Service, error) {
	s, err := entity.NewService(input.Title, input.Description, input.Icon, input.Category, input.Price, input.Featured, input.Points, input.SubServices)
	if err != nil {
		return nil, validationError(err.Error())
	}
	if err := uc.Repo.Create(ctx, s); err != nil {
		return nil, databaseError("failed to create service", err)
	}
	return s, nil
}

// Update aplica só os campos presentes no patch.
func (uc *ServiceUseCase) Update(ctx context.Context, id string, patch entity.ServicePatch) error {
	if id == "" {
		return validationError("id is required")
	}
	if err := patch.Validate(); err != nil {
		return validationError(err.Error())
	}
	if err := uc.Repo.Update(ctx, id, patch); err != nil {
		return mapRepoError(err, "service")
	}
	return nil
}

func (uc *ServiceUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return validationError("id is required")
	}
	if err := uc.Repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "service")
	}
	return nil
}
