package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type Kind string

const (
	KindUnselected Kind = "unselected"
	KindPrimary    Kind = "primary"
	KindFallback   Kind = "fallback"
)

// Store é o banco escolhido pelo Selector.
type Store struct {
	DB   *sqlx.DB
	Kind Kind
}

// StoreProvider é o que os repositórios recebem: cada operação pede o store
// antes de rodar a query.
type StoreProvider interface {
	Ensure(ctx context.Context) (*Store, error)
}

// Selector decide, uma vez por processo, se o tráfego vai para o Postgres ou
// para o SQLite local. A decisão fica memorizada até Reset.
type Selector struct {
	mu sync.Mutex

	openPrimary  Opener
	openFallback Opener
	probeTimeout time.Duration
	logger       logrus.FieldLogger

	// OnFallback é chamado toda vez que o fallback é escolhido.
	OnFallback func()

	primaryDB  *sqlx.DB
	fallbackDB *sqlx.DB
	current    *Store
}

// NewSelector não conecta em nada; a primeira chamada a Ensure faz o probe.
// openPrimary pode ser nil (sem DATABASE_URL): aí o fallback é usado direto.
func NewSelector(openPrimary, openFallback Opener, probeTimeout time.Duration, logger logrus.FieldLogger) *Selector {
	if probeTimeout <= 0 {
		probeTimeout = 3 * time.Second
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Selector{
		openPrimary:  openPrimary,
		openFallback: openFallback,
		probeTimeout: probeTimeout,
		logger:       logger.WithField("component", "store_selector"),
	}
}

var _ StoreProvider = (*Selector)(nil)

// Ensure devolve o store memorizado ou, na primeira vez, faz o probe do
// primário e cai para o fallback se ele falhar. Erros do probe não sobem;
// só a falha do fallback é devolvida.
func (s *Selector) Ensure(ctx context.Context) (*Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return s.current, nil
	}

	probeErr := s.probePrimary(ctx)
	if probeErr == nil {
		s.current = &Store{DB: s.primaryDB, Kind: KindPrimary}
		s.logger.Info("✅ banco primário selecionado")
		return s.current, nil
	}
	s.logger.WithError(probeErr).Warn("⚠️ banco primário indisponível, usando fallback local")

	if s.fallbackDB == nil {
		db, err := s.openFallback(ctx)
		if err != nil {
			return nil, fmt.Errorf("falha ao abrir banco de fallback: %w", err)
		}
		s.fallbackDB = db
	}
	if err := EnsureSchema(ctx, s.fallbackDB); err != nil {
		return nil, err
	}

	s.current = &Store{DB: s.fallbackDB, Kind: KindFallback}
	if s.OnFallback != nil {
		s.OnFallback()
	}
	return s.current, nil
}

func (s *Selector) probePrimary(ctx context.Context) error {
	if s.openPrimary == nil {
		return fmt.Errorf("banco primário não configurado")
	}

	ctx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	if s.primaryDB == nil {
		db, err := s.openPrimary(ctx)
		if err != nil {
			return err
		}
		s.primaryDB = db
	}

	var one int
	if err := s.primaryDB.GetContext(ctx, &one, "SELECT 1"); err != nil {
		return err
	}
	return EnsureSchema(ctx, s.primaryDB)
}

// Active informa qual store está em uso sem disparar o probe.
func (s *Selector) Active() Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return KindUnselected
	}
	return s.current.Kind
}

// Reset esquece a decisão; a próxima chamada a Ensure testa o primário de novo.
// As conexões abertas são reaproveitadas.
func (s *Selector) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Close fecha as conexões abertas pelo Selector.
func (s *Selector) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for _, db := range []*sqlx.DB{s.primaryDB, s.fallbackDB} {
		if db == nil {
			continue
		}
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.primaryDB, s.fallbackDB, s.current = nil, nil, nil
	return firstErr
}

// conn é o atalho usado pelos repositórios.
func conn(ctx context.Context, p StoreProvider) (*sqlx.DB, error) {
	st, err := p.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	return st.DB, nil
}
