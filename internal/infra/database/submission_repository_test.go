package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/agency-site/internal/entity"
)

func TestSubmissionRepository_CreateListUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewSubmissionRepository(newTestStore(t))

	for _, name := range []string{"Ana", "Bruno", "Carla"} {
		s, err := entity.NewSubmission(name, name+"@example.com", "", "", "SEO", "Hello")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, s))
	}

	all, err := repo.List(ctx, entity.SubmissionFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, all, 3)

	limited, err := repo.List(ctx, entity.SubmissionFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	target := all[0].ID
	require.NoError(t, repo.UpdateStatus(ctx, target, entity.SubmissionStatusCompleted))

	got, err := repo.FindByID(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusCompleted, got.Status)
	assert.True(t, !got.UpdatedAt.Before(got.CreatedAt))

	completed, err := repo.List(ctx, entity.SubmissionFilter{Status: entity.SubmissionStatusCompleted, Limit: 50})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, target, completed[0].ID)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"new": 2, "in-progress": 0, "completed": 1}, counts)
}

func TestSubmissionRepository_MissingRows(t *testing.T) {
	ctx := context.Background()
	repo := NewSubmissionRepository(newTestStore(t))

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", entity.SubmissionStatusNew), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), ErrNotFound)

	_, err := repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceRepository_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceRepository(newTestStore(t))

	svc, err := entity.NewService("SEO", "Organic growth", "search", "marketing", "", false, []string{"audit"}, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, svc))

	title := "Technical SEO"
	subs := []string{"Core Web Vitals", "Schema"}
	require.NoError(t, repo.Update(ctx, svc.ID, entity.ServicePatch{Title: &title, SubServices: &subs}))

	got, err := repo.FindByID(ctx, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Technical SEO", got.Title)
	assert.Equal(t, "Organic growth", got.Description, "campos ausentes não mudam")
	assert.Equal(t, entity.StringList{"audit"}, got.Points)
	assert.Equal(t, entity.StringList{"Core Web Vitals", "Schema"}, got.SubServices)

	assert.ErrorIs(t, repo.Update(ctx, svc.ID, entity.ServicePatch{}), ErrNoFields)
	assert.ErrorIs(t, repo.Update(ctx, "missing", entity.ServicePatch{Title: &title}), ErrNotFound)
}

func TestAnalyticsRepository_PurgeOlderThan(t *testing.T) {
	ctx := context.Background()
	repo := NewAnalyticsRepository(newTestStore(t))

	old := entity.NewAnalyticsEvent(entity.EventContactSubmitted, nil)
	old.CreatedAt = old.CreatedAt.AddDate(0, 0, -120)
	require.NoError(t, repo.Record(ctx, old))
	require.NoError(t, repo.Record(ctx, entity.NewAnalyticsEvent(entity.EventNewsletterSubscribed, map[string]string{"email": "a@b.c"})))

	n, err := repo.PurgeOlderThan(ctx, old.CreatedAt.AddDate(0, 0, 30))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
