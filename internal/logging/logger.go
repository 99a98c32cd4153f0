package logging

import (
	"log"
	"os"
)

// Logger writes user-facing progress to stdout and diagnostics to stderr.
type Logger struct {
	info *log.Logger
	err  *log.Logger
}

func New() *Logger {
	return &Logger{
		info: log.New(os.Stdout, "", 0),
		err:  log.New(os.Stderr, "ERROR ", 0),
	}
}

func (l *Logger) Infof(format string, args ...any) {
	l.info.Printf(format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.err.Printf(format, args...)
}

func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.Errorf("%v", err)
}
