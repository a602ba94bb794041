package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с настройками logrus по умолчанию,
// чтобы пакеты можно было использовать из тестов без инициализации.
var Log = logrus.New()

// Init инициализирует глобальный логгер из окружения.
// Вызывается один раз при старте приложения в main.go и в TestMain.
func Init() {
	Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Configure настраивает уровень, формат и вывод логгера.
// Пустой или неизвестный уровень означает "info".
// Формат "json" - для продакшена, все остальное - текст для разработки.
func Configure(level, format string, out io.Writer) {
	Log = logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(out)
}

// For возвращает запись с полем component.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
