package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
)

// newTestStore devolve um Selector sem primário, apontando para um SQLite
// temporário.
func newTestStore(t *testing.T) *Selector {
	t.Helper()
	logger, _ := test.NewNullLogger()
	sel := NewSelector(nil, FallbackOpener(filepath.Join(t.TempDir(), "test.db")), time.Second, logger)
	t.Cleanup(func() { sel.Close() })
	return sel
}
