package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/xavierca1/agency-site/internal/infra/http/handlers"
	"github.com/xavierca1/agency-site/internal/infra/http/middleware"
	"github.com/xavierca1/agency-site/internal/infra/http/router"
	"github.com/xavierca1/agency-site/internal/infra/mail"
	"github.com/xavierca1/agency-site/internal/infra/queue"
	"github.com/xavierca1/agency-site/internal/infra/worker"
	"github.com/xavierca1/agency-site/internal/usecase"
)

func newServeCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Sobe a API HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a := newApp(cfg, logger)
			defer a.Close()

			// 1. Banco: decide o store já no boot e garante o admin inicial
			authUC := usecase.NewAuthUseCase(a.admins, a.hasher, a.tokens)
			if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
				created, err := authUC.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminEmail)
				if err != nil {
					logger.WithError(err).Error("❌ falha ao garantir admin inicial")
				} else if created {
					logger.WithField("username", cfg.AdminUsername).Info("👤 admin inicial criado")
				}
			} else if _, err := a.selector.Ensure(ctx); err != nil {
				return err
			}

			// 2. Notificações: fila se houver RabbitMQ, senão SMTP direto
			sender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.NotifyEmail, cfg.SiteURL, cfg.APIURL, logger)

			direct := mail.NewDirectNotifier(sender)
			var notifier usecase.Notifier = direct
			var queueStatus handlers.QueueStatus
			if cfg.RabbitMQURL != "" {
				rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
				if err != nil {
					logger.WithError(err).Warn("⚠️ RabbitMQ indisponível, enviando emails direto")
				} else {
					defer rabbitMQ.Close()
					queueStatus = rabbitMQ
					notifier = queue.NewProducer(rabbitMQ.Ch)

					w := queue.NewWorker(rabbitMQ.Ch, sender, logger)
					go func() {
						if err := w.Start(ctx, queue.QueueName); err != nil {
							logger.WithError(err).Error("❌ worker de notificações parou")
						}
					}()
				}
			}

			// 3. Workers
			go worker.NewAnalyticsRetentionWorker(a.events, cfg.AnalyticsRetentionDays, logger).Start(ctx)

			// 4. UseCases
			contactUC := usecase.NewContactUseCase(a.submissions, a.events, notifier, logger)
			newsletterUC := usecase.NewNewsletterUseCase(a.subscribers, a.events, notifier, logger)
			serviceUC := usecase.NewServiceUseCase(a.services)
			teamUC := usecase.NewTeamUseCase(a.team)
			contentUC := usecase.NewContentUseCase(a.content)
			dashboardUC := usecase.NewDashboardUseCase(a.submissions, a.subscribers, a.services, a.team)

			// 5. Handlers
			rs := handlers.NewResponder(cfg.IsProduction(), logger)
			requireAdmin := middleware.RequireAdmin(a.tokens)

			// formulários e login não dividem o mesmo contador
			limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
			go limiter.Cleanup(ctx.Done())
			loginLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
			go loginLimiter.Cleanup(ctx.Done())

			h := router.Handlers{
				Health:     handlers.NewHealthHandler(a.selector, queueStatus, version),
				Auth:       handlers.NewAuthHandler(authUC, rs),
				Contact:    handlers.NewContactHandler(contactUC, rs),
				Newsletter: handlers.NewNewsletterHandler(newsletterUC, cfg.SiteURL, requireAdmin, rs),
				Services:   handlers.NewServiceHandler(serviceUC, rs),
				Team:       handlers.NewTeamHandler(teamUC, rs),
				Content:    handlers.NewContentHandler(contentUC, rs),
				Dashboard:  handlers.NewDashboardHandler(dashboardUC, rs),
				Store:      handlers.NewStoreHandler(a.selector, rs),
			}

			// 6. Router
			srv := &http.Server{
				Addr: ":" + cfg.Port,
				Handler: router.New(h, router.Options{
					CORSOrigins:  cfg.CORSOrigins,
					RequireAdmin: requireAdmin,
					RateLimiter:  limiter,
					LoginLimiter: loginLimiter,
					Logger:       logger,
				}),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.WithField("port", cfg.Port).WithField("store", a.selector.Active()).Info("🔥 Server da agência rodando")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			case <-ctx.Done():
				logger.Info("⚠️ desligando servidor")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := direct.Wait(shutdownCtx); err != nil {
				logger.WithError(err).Warn("⚠️ emails ainda em envio foram descartados")
			}
			return nil
		},
	}
}
