package logger

import (
	"log/slog"
	"os"
)

var log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Init() {
	log.Info("logger initialized")
}

func Info(msg string, fields map[string]any) {
	log.Info(msg, attrs(fields)...)
}

func Warn(msg string, fields map[string]any) {
	log.Warn(msg, attrs(fields)...)
}

func Error(msg string, fields map[string]any) {
	log.Error(msg, attrs(fields)...)
}

func Fatal(msg string, fields map[string]any) {
	log.Error(msg, attrs(fields)...)
	os.Exit(1)
}

func attrs(fields map[string]any) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
