package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"pizzaops.io/admin-dashboard/config/environment_variables"
)

var (
	instance *logrus.Logger
	once     sync.Once
)

func GetLogger() *logrus.Logger {
	once.Do(func() {
		instance = newLogger(
			environment_variables.EnvironmentVariables.LOG_LEVEL,
			environment_variables.EnvironmentVariables.LOG_FORMAT,
		)
	})
	return instance
}

func newLogger(level string, format string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	if strings.EqualFold(format, "text") {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}
