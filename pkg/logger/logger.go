package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

var levelColors = map[Level]*color.Color{
	LevelDebug: color.New(color.FgHiBlack),
	LevelInfo:  color.New(color.FgCyan),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
	LevelFatal: color.New(color.FgHiRed, color.Bold),
}

// ParseLevel парсит уровень из строки конфигурации
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}
}

// Logger printf-style логгер с уровнями
// Пишет в консоль (с цветными уровнями) и, опционально, в файл (без цветов)
type Logger struct {
	mu      sync.Mutex
	console io.Writer
	file    *os.File
	level   Level
	exit    func(code int)
}

// New создает логгер. filePath может быть пустым - тогда только консоль
func New(filePath string, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		console: color.Output,
		level:   lvl,
		exit:    os.Exit,
	}

	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		l.file = f
	}

	return l, nil
}

// NewWriter создает логгер поверх произвольного writer без цветов (используется в CLI и тестах)
func NewWriter(w io.Writer, level Level) *Logger {
	return &Logger{console: w, level: level, exit: os.Exit}
}

// NewDiscard логгер, который ничего не пишет
func NewDiscard() *Logger {
	return NewWriter(io.Discard, LevelFatal+1)
}

func (l *Logger) Debug(format string, v ...interface{}) { l.log(LevelDebug, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.log(LevelInfo, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.log(LevelWarn, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.log(LevelError, format, v...) }

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log(LevelFatal, format, v...)
	l.Close()
	l.exit(1)
}

// Close закрывает файл лога, если он был открыт
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) log(level Level, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	ts := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, v...)
	name := levelNames[level]

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.console == color.Output {
		fmt.Fprintf(l.console, "%s %s %s\n", ts, levelColors[level].Sprintf("%-5s", name), msg)
	} else {
		fmt.Fprintf(l.console, "%s %-5s %s\n", ts, name, msg)
	}

	if l.file != nil {
		fmt.Fprintf(l.file, "%s %-5s %s\n", ts, name, msg)
	}
}
