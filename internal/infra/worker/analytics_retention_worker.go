package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// EventPurger apaga eventos de analytics anteriores ao corte.
type EventPurger interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type AnalyticsRetentionWorker struct {
	repo         EventPurger
	retention    time.Duration
	tickInterval time.Duration
	now          func() time.Time
	logger       logrus.FieldLogger
}

func NewAnalyticsRetentionWorker(repo EventPurger, retentionDays int, logger logrus.FieldLogger) *AnalyticsRetentionWorker {
	if retentionDays <= 0 {
		retentionDays = 90
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &AnalyticsRetentionWorker{
		repo:         repo,
		retention:    time.Duration(retentionDays) * 24 * time.Hour,
		tickInterval: time.Hour,
		now:          time.Now,
		logger:       logger.WithField("component", "analytics_retention"),
	}
}

func (w *AnalyticsRetentionWorker) Start(ctx context.Context) {
	w.logger.WithField("retention", w.retention.String()).Info("🕒 Analytics Retention Worker iniciado")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("⚠️ Analytics Retention Worker encerrado")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce faz uma passada de limpeza e devolve quantos eventos foram apagados.
func (w *AnalyticsRetentionWorker) RunOnce(ctx context.Context) int64 {
	cutoff := w.now().Add(-w.retention)

	n, err := w.repo.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		w.logger.WithError(err).Error("❌ Erro ao apagar eventos antigos")
		return 0
	}
	if n > 0 {
		w.logger.WithField("deleted", n).Info("✅ eventos de analytics antigos removidos")
	}
	return n
}
