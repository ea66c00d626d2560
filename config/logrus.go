package config

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrusInstance
}

// RedirectLogsToFile sends log output to the given file instead of stderr.
// The interactive UI owns the terminal, so logging straight to stderr would
// tear its rendering; if the file cannot be opened, logs are discarded.
func RedirectLogsToFile(path string) {
	log := GetLogrusInstance()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
}
