package seed

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/agency-site/internal/infra/database"
)

const sample = `
services:
  - title: SEO
    description: Search engine optimization
    featured: true
    points: [Audit, Keywords]
  - title: Paid Media
    description: Google and Meta ads
team:
  - name: Ana Souza
    role: Strategist
    position: 1
content:
  - section: Testimonials
    key: acme
    author: ACME Inc.
    body: Great results!
`

func newSeeder(t *testing.T) (*Seeder, *database.Selector) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	sel := database.NewSelector(nil, database.FallbackOpener(filepath.Join(t.TempDir(), "seed.db")), time.Second, logger)
	t.Cleanup(func() { sel.Close() })

	return &Seeder{
		Services: database.NewServiceRepository(sel),
		Team:     database.NewTeamRepository(sel),
		Content:  database.NewContentRepository(sel),
		Logger:   logger,
	}, sel
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("servicez: []\n"))
	assert.Error(t, err)
}

func TestParse_EmptyFile(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Services)
}

func TestSeeder_Apply_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, sel := newSeeder(t)

	file, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	res, err := s.Apply(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 4}, res)

	res, err = s.Apply(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, Result{Skipped: 4}, res)

	services, err := database.NewServiceRepository(sel).List(ctx, false)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "SEO", services[0].Title, "featured first")
	assert.Equal(t, []string{"Audit", "Keywords"}, []string(services[0].Points))

	blocks, err := database.NewContentRepository(sel).List(ctx, "testimonials")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "ACME Inc.", blocks[0].Author)
}
