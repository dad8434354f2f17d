package logger

import "fmt"

// Init sets up a default structured logger before the config is loaded.
// Startup code may log through Info before InitStructured runs.
func Init() {
	InitStructured("local")
}

// Info logs a printf-style informational message
func Info(format string, args ...interface{}) {
	zlog.Info().Msg(fmt.Sprintf(format, args...))
}

// Error logs a printf-style error message
func Error(format string, args ...interface{}) {
	zlog.Error().Msg(fmt.Sprintf(format, args...))
}
