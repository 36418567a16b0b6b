package main

import (
	"github.com/sirupsen/logrus"
	"github.com/xavierca1/agency-site/internal/config"
	"github.com/xavierca1/agency-site/internal/infra/auth"
	"github.com/xavierca1/agency-site/internal/infra/database"
	"github.com/xavierca1/agency-site/internal/infra/metrics"
)

// app junta o que todos os comandos usam: o Selector e os repositórios.
type app struct {
	cfg    *config.Config
	logger *logrus.Logger

	selector *database.Selector

	submissions *database.SubmissionRepository
	subscribers *database.SubscriberRepository
	services    *database.ServiceRepository
	team        *database.TeamRepository
	content     *database.ContentRepository
	admins      *database.AdminRepository
	events      *database.AnalyticsRepository

	tokens *auth.TokenManager
	hasher *auth.BcryptHasher
}

func newApp(cfg *config.Config, logger *logrus.Logger) *app {
	var primary database.Opener
	if cfg.DatabaseURL != "" {
		primary = database.PrimaryOpener(cfg.DBDriver, cfg.DatabaseURL)
	}

	// Nada conecta aqui: o primeiro Ensure decide entre Postgres e SQLite.
	selector := database.NewSelector(primary, database.FallbackOpener(cfg.FallbackDBPath), cfg.ProbeTimeout, logger)
	selector.OnFallback = metrics.RecordFallbackSelected

	secret := cfg.JWTSecret
	if secret == "" {
		logger.Warn("⚠️ JWT_SECRET vazio, usando segredo de desenvolvimento")
		secret = "dev-secret-change-me"
	}

	return &app{
		cfg:         cfg,
		logger:      logger,
		selector:    selector,
		submissions: database.NewSubmissionRepository(selector),
		subscribers: database.NewSubscriberRepository(selector),
		services:    database.NewServiceRepository(selector),
		team:        database.NewTeamRepository(selector),
		content:     database.NewContentRepository(selector),
		admins:      database.NewAdminRepository(selector),
		events:      database.NewAnalyticsRepository(selector),
		tokens:      auth.NewTokenManager(secret, auth.DefaultTokenTTL),
		hasher:      auth.NewBcryptHasher(),
	}
}

func (a *app) Close() {
	if err := a.selector.Close(); err != nil {
		a.logger.WithError(err).Warn("⚠️ erro ao fechar conexões")
	}
}
