package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/agency-site/internal/entity"
)

type ContentBlockInput struct {
	Section  string `json:"section"`
	Key      string `json:"key"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
	Author   string `json:"author"`
	Position int    `json:"position"`
}

type ContentUseCase struct {
	Repo ContentRepositoryInterface
}

func NewContentUseCase(repo ContentRepositoryInterface) *ContentUseCase {
	return &ContentUseCase{Repo: repo}
}

func (uc *ContentUseCase) List(ctx context.Context, section string) ([]*entity.ContentBlock, error) {
	blocks, err := uc.Repo.List(ctx, strings.ToLower(strings.TrimSpace(section)))
	if err != nil {
		return nil, databaseError("failed to list content", err)
	}
	return blocks, nil
}

func (uc *ContentUseCase) Create(ctx context.Context, input ContentBlockInput) (*entity.ContentBlock, error) {
	b, err := entity.NewContentBlock(input.Section, input.Key, input.Title, input.Body, input.ImageURL, input.Author, input.Position)
	if err != nil {
		return nil, validationError(err.Error())
	}
	if err := uc.Repo.Create(ctx, b); err != nil {
		return nil, mapRepoError(err, "content block")
	}
	return b, nil
}

func (uc *ContentUseCase) Update(ctx context.Context, id string, patch entity.ContentBlockPatch) error {
	if id == "" {
		return validationError("id is required")
	}
	if err := uc.Repo.Update(ctx, id, patch); err != nil {
		return mapRepoError(err, "content block")
	}
	return nil
}

func (uc *ContentUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return validationError("id is required")
	}
	if err := uc.Repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "content block")
	}
	return nil
}
