package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/agency-site/internal/entity"
)

// MockSubmissionRepository - Mock para SubmissionRepositoryInterface
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, s *entity.Submission) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSubmissionRepository) List(ctx context.Context, filter entity.SubmissionFilter) ([]*entity.Submission, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockSubmissionRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSubmissionRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// memorySubscribers guarda subscribers num map, com a mesma regra de email único do banco.
type memorySubscribers struct {
	rows      map[string]*entity.Subscriber
	creates   int
	reactives int
}

func newMemorySubscribers() *memorySubscribers {
	return &memorySubscribers{rows: map[string]*entity.Subscriber{}}
}

func (r *memorySubscribers) FindByEmail(_ context.Context, email string) (*entity.Subscriber, error) {
	s, ok := r.rows[email]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memorySubscribers) Create(_ context.Context, s *entity.Subscriber) error {
	if _, ok := r.rows[s.Email]; ok {
		return entity.ErrDuplicate
	}
	cp := *s
	r.rows[s.Email] = &cp
	r.creates++
	return nil
}

func (r *memorySubscribers) Reactivate(_ context.Context, id, name string, preferences []string) error {
	for _, s := range r.rows {
		if s.ID != id {
			continue
		}
		s.Status = entity.SubscriberStatusActive
		s.UnsubscribedAt = nil
		if name != "" {
			s.Name = name
		}
		if preferences != nil {
			s.Preferences = preferences
		}
		r.reactives++
		return nil
	}
	return entity.ErrNotFound
}

func (r *memorySubscribers) Unsubscribe(_ context.Context, email string, at time.Time) error {
	s, ok := r.rows[email]
	if !ok {
		return entity.ErrNotFound
	}
	s.Status = entity.SubscriberStatusUnsubscribed
	s.UnsubscribedAt = &at
	return nil
}

func (r *memorySubscribers) List(context.Context) ([]*entity.Subscriber, error) {
	out := make([]*entity.Subscriber, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, s)
	}
	return out, nil
}

func (r *memorySubscribers) Stats(context.Context) (entity.SubscriberStats, error) {
	var st entity.SubscriberStats
	for _, s := range r.rows {
		st.Total++
		if s.IsActive() {
			st.Active++
		} else {
			st.Unsubscribed++
		}
	}
	return st, nil
}

// MockEventRecorder - Mock para EventRecorder
type MockEventRecorder struct {
	mock.Mock
}

func (m *MockEventRecorder) Record(ctx context.Context, e *entity.AnalyticsEvent) error {
	return m.Called(ctx, e).Error(0)
}

// MockNotifier - Mock para Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n entity.Notification) error {
	return m.Called(ctx, n).Error(0)
}

// MockAdminRepository - Mock para AdminRepositoryInterface
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) Create(ctx context.Context, u *entity.AdminUser) error {
	return m.Called(ctx, u).Error(0)
}

// plainHasher "hasheia" prefixando a senha, o suficiente para os testes.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hash:" + p, nil }

func (plainHasher) Compare(hash, p string) error {
	if hash != "hash:"+p {
		return errors.New("mismatch")
	}
	return nil
}

type fixedTokens struct{}

func (fixedTokens) Issue(u *entity.AdminUser) (string, time.Time, error) {
	return "token-" + u.Username, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}
