package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/xavierca1/agency-site/internal/entity"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message"`
}

type ContactUseCase struct {
	Repo     SubmissionRepositoryInterface
	Events   EventRecorder
	Notifier Notifier
	Logger   logrus.FieldLogger
}

func NewContactUseCase(repo SubmissionRepositoryInterface, events EventRecorder, notifier Notifier, logger logrus.FieldLogger) *ContactUseCase {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ContactUseCase{
		Repo:     repo,
		Events:   events,
		Notifier: notifier,
		Logger:   logger,
	}
}

// Submit grava o contato e depois, sem transação, o evento de analytics e o
// aviso por email. Se esses dois falharem o contato continua salvo.
func (uc *ContactUseCase) Submit(ctx context.Context, input ContactInput) (*entity.Submission, error) {
	if errs := ValidateContactInput(input); len(errs) > 0 {
		return nil, validationError(joinValidation(errs))
	}

	submission, err := entity.NewSubmission(input.Name, input.Email, input.Phone, input.Company, input.Service, input.Message)
	if err != nil {
		return nil, validationError(err.Error())
	}

	if err := uc.Repo.Create(ctx, submission); err != nil {
		return nil, databaseError("failed to save submission", err)
	}

	log := uc.Logger.WithField("submission_id", submission.ID)

	if uc.Events != nil {
		event := entity.NewAnalyticsEvent(entity.EventContactSubmitted, map[string]string{
			"submission_id": submission.ID,
			"service":       submission.Service,
		})
		if err := uc.Events.Record(ctx, event); err != nil {
			log.WithError(err).Warn("⚠️ contato salvo, mas evento de analytics falhou")
		}
	}

	if uc.Notifier != nil {
		if err := uc.Notifier.Notify(ctx, entity.ContactNotification(submission)); err != nil {
			log.WithError(err).Warn("⚠️ contato salvo, mas aviso por email falhou")
		}
	}

	log.Info("📩 novo contato recebido")
	return submission, nil
}

func (uc *ContactUseCase) List(ctx context.Context, status string, limit int) ([]*entity.Submission, error) {
	if status != "" && status != "all" && !entity.IsValidSubmissionStatus(status) {
		return nil, validationError(entity.ErrInvalidSubmissionStatus.Error())
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	submissions, err := uc.Repo.List(ctx, entity.SubmissionFilter{Status: status, Limit: limit})
	if err != nil {
		return nil, databaseError("failed to list submissions", err)
	}
	return submissions, nil
}

// UpdateStatus só aceita new, in-progress ou completed. Qualquer outro valor
// volta antes de tocar no banco.
func (uc *ContactUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	if id == "" {
		return validationError("id is required")
	}
	if status == "" {
		return validationError("status is required")
	}
	if !entity.IsValidSubmissionStatus(status) {
		return validationError(entity.ErrInvalidSubmissionStatus.Error())
	}

	if err := uc.Repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return notFoundError("submission not found")
		}
		return databaseError("failed to update submission", err)
	}
	return nil
}

func (uc *ContactUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return validationError("id is required")
	}
	if err := uc.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return notFoundError("submission not found")
		}
		return databaseError("failed to delete submission", err)
	}
	return nil
}
