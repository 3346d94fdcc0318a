package config

import (
	"github.com/sirupsen/logrus"
)

// ConfigureLogging sets up the standard logrus logger. In Lambda, entries are
// JSON without timestamps since CloudWatch records the ingestion time.
func ConfigureLogging(config *Config, sc *ServerlessConfig) *logrus.Logger {
	logger := logrus.StandardLogger()

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if sc != nil && sc.IsLambda {
		logger.SetFormatter(&logrus.JSONFormatter{DisableTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
