package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xavierca1/agency-site/internal/config"
	"github.com/xavierca1/agency-site/internal/logging"
)

const version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("❌ erro fatal")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "agency-api",
		Short:         "API do site da agência e do painel admin",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "arquivo .env opcional")

	load := func() (*config.Config, *logrus.Logger, error) {
		cfg, err := config.Load(envFile)
		if err != nil {
			logrus.WithError(err).Error("❌ configuração inválida")
			return nil, nil, err
		}
		return cfg, logging.New(cfg.LogLevel, cfg.IsProduction()), nil
	}

	serve := newServeCmd(load)
	root.AddCommand(serve, newInitAdminCmd(load), newSeedCmd(load))

	// sem subcomando = serve
	root.RunE = serve.RunE
	return root
}

type loader func() (*config.Config, *logrus.Logger, error)
