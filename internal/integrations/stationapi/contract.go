package stationapi

import "net/http"

// HTTPDoer подмножество интерфейса http.Client
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
