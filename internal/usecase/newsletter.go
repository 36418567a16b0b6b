package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xavierca1/agency-site/internal/entity"
)

type SubscribeInput struct {
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Preferences []string `json:"preferences"`
}

type SubscribeOutput struct {
	Subscriber        *entity.Subscriber
	AlreadySubscribed bool
	Reactivated       bool
}

type NewsletterUseCase struct {
	Repo     SubscriberRepositoryInterface
	Events   EventRecorder
	Notifier Notifier
	Logger   logrus.FieldLogger
}

func NewNewsletterUseCase(repo SubscriberRepositoryInterface, events EventRecorder, notifier Notifier, logger logrus.FieldLogger) *NewsletterUseCase {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &NewsletterUseCase{
		Repo:     repo,
		Events:   events,
		Notifier: notifier,
		Logger:   logger,
	}
}

// Subscribe garante uma linha por email: se já está ativo não faz nada, se
// saiu antes a mesma linha é reativada.
func (uc *NewsletterUseCase) Subscribe(ctx context.Context, input SubscribeInput) (*SubscribeOutput, error) {
	if errs := ValidateSubscribeInput(input); len(errs) > 0 {
		return nil, validationError(joinValidation(errs))
	}
	email := entity.NormalizeEmail(input.Email)

	existing, err := uc.Repo.FindByEmail(ctx, email)
	switch {
	case err == nil && existing.IsActive():
		return &SubscribeOutput{Subscriber: existing, AlreadySubscribed: true}, nil

	case err == nil:
		return uc.reactivate(ctx, existing, input)

	case errors.Is(err, entity.ErrNotFound):
		// segue para o cadastro

	default:
		return nil, databaseError("failed to look up subscriber", err)
	}

	subscriber, err := entity.NewSubscriber(email, input.Name, input.Preferences)
	if err != nil {
		return nil, validationError(err.Error())
	}

	if err := uc.Repo.Create(ctx, subscriber); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			// Outra request cadastrou o mesmo email entre o SELECT e o INSERT.
			current, findErr := uc.Repo.FindByEmail(ctx, email)
			if findErr != nil {
				return nil, databaseError("failed to look up subscriber", findErr)
			}
			if current.IsActive() {
				return &SubscribeOutput{Subscriber: current, AlreadySubscribed: true}, nil
			}
			return uc.reactivate(ctx, current, input)
		}
		return nil, databaseError("failed to save subscriber", err)
	}

	uc.afterSubscribe(ctx, subscriber)
	return &SubscribeOutput{Subscriber: subscriber}, nil
}

// reactivate volta a mesma linha para active, mantendo id e created_at.
func (uc *NewsletterUseCase) reactivate(ctx context.Context, existing *entity.Subscriber, input SubscribeInput) (*SubscribeOutput, error) {
	if err := uc.Repo.Reactivate(ctx, existing.ID, input.Name, input.Preferences); err != nil {
		return nil, databaseError("failed to reactivate subscriber", err)
	}
	existing.Status = entity.SubscriberStatusActive
	existing.UnsubscribedAt = nil
	existing.UpdatedAt = time.Now().UTC()
	if input.Name != "" {
		existing.Name = input.Name
	}
	if input.Preferences != nil {
		existing.Preferences = input.Preferences
	}
	uc.afterSubscribe(ctx, existing)
	return &SubscribeOutput{Subscriber: existing, Reactivated: true}, nil
}

func (uc *NewsletterUseCase) afterSubscribe(ctx context.Context, s *entity.Subscriber) {
	log := uc.Logger.WithField("subscriber_id", s.ID)

	if uc.Events != nil {
		event := entity.NewAnalyticsEvent(entity.EventNewsletterSubscribed, map[string]string{"subscriber_id": s.ID})
		if err := uc.Events.Record(ctx, event); err != nil {
			log.WithError(err).Warn("⚠️ evento de analytics falhou")
		}
	}
	if uc.Notifier != nil {
		if err := uc.Notifier.Notify(ctx, entity.NewsletterNotification(s)); err != nil {
			log.WithError(err).Warn("⚠️ email de boas-vindas falhou")
		}
	}
	log.Info("📰 novo inscrito na newsletter")
}

func (uc *NewsletterUseCase) Unsubscribe(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return validationError("email is required")
	}

	if err := uc.Repo.Unsubscribe(ctx, email, time.Now().UTC()); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return notFoundError("subscriber not found")
		}
		return databaseError("failed to unsubscribe", err)
	}

	if uc.Events != nil {
		event := entity.NewAnalyticsEvent(entity.EventNewsletterLeft, map[string]string{"email": email})
		if err := uc.Events.Record(ctx, event); err != nil {
			uc.Logger.WithError(err).Warn("⚠️ evento de analytics falhou")
		}
	}
	return nil
}

func (uc *NewsletterUseCase) List(ctx context.Context) ([]*entity.Subscriber, entity.SubscriberStats, error) {
	subscribers, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, entity.SubscriberStats{}, databaseError("failed to list subscribers", err)
	}
	stats, err := uc.Repo.Stats(ctx)
	if err != nil {
		return nil, entity.SubscriberStats{}, databaseError("failed to compute subscriber stats", err)
	}
	return subscribers, stats, nil
}
