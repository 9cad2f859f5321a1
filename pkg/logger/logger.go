package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	log.SetOutput(os.Stdout)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}

// WithRequestID возвращает entry с проставленным идентификатором корреляции.
// Все строки лога одного запроса группируются по этому полю.
func WithRequestID(log *logrus.Logger, requestID string) *logrus.Entry {
	return log.WithField("request_id", requestID)
}
