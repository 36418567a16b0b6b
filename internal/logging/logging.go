package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New cria o logger da aplicação: JSON em produção, texto colorido no resto.
func New(level string, production bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if production {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		logger.WithField("level", level).Warn("⚠️ LOG_LEVEL inválido, usando info")
	}
	logger.SetLevel(lvl)

	return logger
}
