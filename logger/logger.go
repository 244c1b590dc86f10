package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	globalLogLevel     = logrus.InfoLevel
	globalLogLevelLock sync.Mutex
)

// GetProjectLogger returns a logger for the kbtune project, configured with the global log level.
func GetProjectLogger() *logrus.Entry {
	globalLogLevelLock.Lock()
	level := globalLogLevel
	globalLogLevelLock.Unlock()

	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Level = level
	logger.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	}

	return logger.WithField("name", "kbtune")
}

// SetLevel changes the level of every logger created afterwards by GetProjectLogger.
func SetLevel(level logrus.Level) {
	globalLogLevelLock.Lock()
	defer globalLogLevelLock.Unlock()
	globalLogLevel = level
}

// ParseAndSetLevel parses a level name such as "debug" and sets it globally.
func ParseAndSetLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	SetLevel(level)
	return nil
}
