package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logrus instance. Handlers and services log
// through it instead of the standard library logger.
var Logger = logrus.New()

var once sync.Once

// Init configures the global logger. When file is empty, logs go to stdout;
// otherwise they are written to file with lumberjack rotation.
func Init(service, file string) {
	once.Do(func() {
		Logger.SetLevel(logrus.InfoLevel)
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})

		if file == "" {
			Logger.SetOutput(os.Stdout)
		} else {
			Logger.SetOutput(&lumberjack.Logger{
				Filename:   file,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			})
		}

		Logger.WithField("service", service).Info("logger initialized")
	})
}
