package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/agency-site/internal/entity"
)

type SubmissionRepositoryInterface interface {
	Create(ctx context.Context, s *entity.Submission) error
	List(ctx context.Context, filter entity.SubmissionFilter) ([]*entity.Submission, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type SubscriberRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error)
	Create(ctx context.Context, s *entity.Subscriber) error
	Reactivate(ctx context.Context, id, name string, preferences []string) error
	Unsubscribe(ctx context.Context, email string, at time.Time) error
	List(ctx context.Context) ([]*entity.Subscriber, error)
	Stats(ctx context.Context) (entity.SubscriberStats, error)
}

type ServiceRepositoryInterface interface {
	Create(ctx context.Context, s *entity.Service) error
	List(ctx context.Context, activeOnly bool) ([]*entity.Service, error)
	FindByID(ctx context.Context, id string) (*entity.Service, error)
	Update(ctx context.Context, id string, patch entity.ServicePatch) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type TeamRepositoryInterface interface {
	Create(ctx context.Context, m *entity.TeamMember) error
	List(ctx context.Context, activeOnly bool) ([]*entity.TeamMember, error)
	Update(ctx context.Context, id string, patch entity.TeamMemberPatch) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type ContentRepositoryInterface interface {
	Create(ctx context.Context, b *entity.ContentBlock) error
	List(ctx context.Context, section string) ([]*entity.ContentBlock, error)
	Update(ctx context.Context, id string, patch entity.ContentBlockPatch) error
	Delete(ctx context.Context, id string) error
}

type AdminRepositoryInterface interface {
	FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error)
	Create(ctx context.Context, u *entity.AdminUser) error
}

// EventRecorder grava eventos de analytics. Falhas aqui nunca derrubam a request.
type EventRecorder interface {
	Record(ctx context.Context, e *entity.AnalyticsEvent) error
}

// Notifier entrega avisos por email, via fila ou direto.
type Notifier interface {
	Notify(ctx context.Context, n entity.Notification) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(user *entity.AdminUser) (token string, expiresAt time.Time, err error)
}
