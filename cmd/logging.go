/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Log levels, most severe first
const (
	levelError = iota
	levelInfo
	levelDebug
)

func parseLevel(s string) int {
	switch strings.ToLower(s) {
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	default:
		return levelError
	}
}

// stderrLogger is a leveled key/value logger over the standard log
// package. It satisfies ka3005p.Logger.
type stderrLogger struct {
	*log.Logger
	level int
}

func newLoggerTo(w io.Writer, level int) *stderrLogger {
	return &stderrLogger{
		Logger: log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		level:  level,
	}
}

// newLogger builds the logger from --log-level, raised to debug by --verbose
func newLogger() *stderrLogger {
	level := parseLevel(viper.GetString("log-level"))
	if viper.GetBool("verbose") {
		level = levelDebug
	}
	return newLoggerTo(os.Stderr, level)
}

func (l *stderrLogger) Error(msg string, keysAndValues ...interface{}) {
	l.emit(levelError, "ERROR", msg, keysAndValues)
}

func (l *stderrLogger) Info(msg string, keysAndValues ...interface{}) {
	l.emit(levelInfo, "INFO", msg, keysAndValues)
}

func (l *stderrLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.emit(levelDebug, "DEBUG", msg, keysAndValues)
}

func (l *stderrLogger) emit(level int, tag, msg string, kv []interface{}) {
	if level > l.level {
		return
	}
	l.Print(formatEntry(tag, msg, kv))
}

// formatEntry renders "TAG msg k=v k=v". A dangling key is printed
// with the value "?".
func formatEntry(tag, msg string, kv []interface{}) string {
	var b strings.Builder
	b.WriteString(tag)
	b.WriteByte(' ')
	b.WriteString(msg)
	for i := 0; i < len(kv); i += 2 {
		var value interface{} = "?"
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		fmt.Fprintf(&b, " %v=%v", kv[i], value)
	}
	return b.String()
}
