package log

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/foodgram-ru/foodgram-backend/utils/flag"
)

// global accessible logger
var (
	LogV2 *logrus.Entry
)

// This init function is only for testing cases, where the entry point is not
// main function. Unit test will fail with nil pointer dereference if we don't
// init here.
func init() {
	initLogger()
}

func initLogger() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	env := os.Getenv("FOODGRAM_ENV")
	if len(env) == 0 {
		env = "unknown"
	}
	if env == "prod" {
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.SetLevel(logrus.DebugLevel)
	}

	LogV2 = logger.WithFields(logrus.Fields{
		"app": strings.ReplaceAll(*flag.ServiceName, "_", "-"),
		"env": env,
	})
}
