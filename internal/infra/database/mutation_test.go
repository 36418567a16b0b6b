package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/agency-site/internal/entity"
)

type recordingExecer struct {
	calls int
	query string
	args  []any
	rows  int64
}

func (r *recordingExecer) Rebind(q string) string {
	return sqlx.Rebind(sqlx.DOLLAR, q)
}

func (r *recordingExecer) ExecContext(_ context.Context, q string, args ...any) (sql.Result, error) {
	r.calls++
	r.query, r.args = q, args
	return driverResult(r.rows), nil
}

type driverResult int64

func (d driverResult) LastInsertId() (int64, error) { return 0, nil }
func (d driverResult) RowsAffected() (int64, error) { return int64(d), nil }

func strPtr(s string) *string { return &s }

func TestMutation_Build_OrdersFieldsAndPutsKeyLast(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	featured := true
	points := []string{"a", "b"}

	patch := entity.ServicePatch{
		Title:    strPtr("SEO"),
		Featured: &featured,
		Points:   &points,
	}

	query, args, err := NewUpdate("services", "svc-1").SetPatch(patch).Build(now)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE services SET title = ?, featured = ?, points = ?, updated_at = ? WHERE id = ?", query)
	require.Len(t, args, 5)
	assert.Equal(t, "SEO", args[0])
	assert.Equal(t, true, args[1])
	assert.Equal(t, `["a","b"]`, args[2])
	assert.Equal(t, now.UTC(), args[3])
	assert.Equal(t, "svc-1", args[4])
}

func TestMutation_EmptyPatchIssuesNoStatement(t *testing.T) {
	exec := &recordingExecer{rows: 1}

	err := NewUpdate("services", "svc-1").SetPatch(entity.ServicePatch{}).Exec(context.Background(), exec)

	assert.ErrorIs(t, err, ErrNoFields)
	assert.Equal(t, 0, exec.calls)
}

func TestMutation_ExecRebindsForPostgres(t *testing.T) {
	exec := &recordingExecer{rows: 1}

	err := NewUpdate("submissions", "id-9").Set("status", "completed").Exec(context.Background(), exec)
	require.NoError(t, err)

	assert.Equal(t, 1, exec.calls)
	assert.Equal(t, "UPDATE submissions SET status = $1, updated_at = $2 WHERE id = $3", exec.query)
	assert.Equal(t, "id-9", exec.args[2])
}

func TestMutation_ZeroRowsIsNotFound(t *testing.T) {
	exec := &recordingExecer{rows: 0}
	err := NewUpdate("services", "missing").Set("title", "x").Exec(context.Background(), exec)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMutation_RejectsBadIdentifiers(t *testing.T) {
	_, _, err := NewUpdate("services; DROP TABLE x", "1").Set("title", "x").Build(time.Now())
	assert.Error(t, err)

	_, _, err = NewUpdate("services", "1").Set("title = 'x' --", "x").Build(time.Now())
	assert.Error(t, err)

	_, _, err = NewUpdate("services", "1").Set("updated_at", time.Now()).Build(time.Now())
	assert.Error(t, err)
}

func TestMutation_NilSliceBecomesEmptyJSON(t *testing.T) {
	var none []string
	_, args, err := NewUpdate("services", "1").Set("points", none).Build(time.Now())
	require.NoError(t, err)
	assert.Equal(t, "[]", args[0])
}

func TestMutation_SetPatchRejectsNonStruct(t *testing.T) {
	_, _, err := NewUpdate("services", "1").SetPatch("title").Build(time.Now())
	assert.Error(t, err)
}
