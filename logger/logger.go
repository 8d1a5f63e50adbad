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
	LevelInfo:  color.New(color.FgGreen),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
	LevelFatal: color.New(color.FgRed, color.Bold),
}

var categoryColor = color.New(color.FgCyan, color.Bold)

// ParseLevel accepts debug, info, warn or error; anything else is info
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	}
	return LevelInfo
}

// Logger writes one coloured line per event, tagged with a category
// such as API, DATABASE or GATEWAY.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
	exit  func(int)
}

// NewLogger logs to stdout at info level
func NewLogger() *Logger {
	return New(os.Stdout, LevelInfo)
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{out: out, level: level, exit: os.Exit}
}

// Discard returns a logger that drops everything; handy in tests
func Discard() *Logger {
	return New(io.Discard, LevelFatal+1)
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *Logger) log(level Level, category, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	fmt.Fprintf(l.out, "%s %s [%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		levelColors[level].Sprintf("%-5s", levelNames[level]),
		categoryColor.Sprint(category),
		msg,
	)
}

func (l *Logger) Debug(category, msg string) { l.log(LevelDebug, category, msg) }
func (l *Logger) Info(category, msg string)  { l.log(LevelInfo, category, msg) }
func (l *Logger) Warn(category, msg string)  { l.log(LevelWarn, category, msg) }
func (l *Logger) Error(category, msg string) { l.log(LevelError, category, msg) }

func (l *Logger) Fatal(category, msg string) {
	l.log(LevelFatal, category, msg)
	l.exit(1)
}

// LogProcess records a lifecycle step of the service (startup, shutdown, refresh)
func (l *Logger) LogProcess(process, msg string) {
	l.Info("PROCESS", fmt.Sprintf("%s: %s", process, msg))
}

func (l *Logger) LogDatabase(operation, key, msg string) {
	l.Debug("DATABASE", fmt.Sprintf("%s %s: %s", operation, key, msg))
}

func (l *Logger) LogAPI(method, path, status, duration string) {
	l.Info("API", fmt.Sprintf("%s %s - %s (%s)", method, path, status, duration))
}

// LogGateway records one call to the remote café API
func (l *Logger) LogGateway(method, endpoint string, status int, duration time.Duration) {
	msg := fmt.Sprintf("%s %s - %d (%s)", method, endpoint, status, duration.Round(time.Millisecond))
	if status == 0 || status >= 400 {
		l.Warn("GATEWAY", msg)
		return
	}
	l.Debug("GATEWAY", msg)
}

func (l *Logger) LogSecurity(event, msg string) {
	l.Warn("SECURITY", fmt.Sprintf("%s: %s", event, msg))
}

func (l *Logger) LogPayment(linkID, status string) {
	l.Info("PAYMENT", fmt.Sprintf("link %s: %s", linkID, status))
}

// Writer adapts the logger to an io.Writer for libraries that want one
func (l *Logger) Writer(category string, level Level) io.Writer {
	return writerFunc(func(p []byte) (int, error) {
		l.log(level, category, strings.TrimRight(string(p), "\n"))
		return len(p), nil
	})
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

// Close flushes nothing today; it exists so callers can defer it
func (l *Logger) Close() error {
	if c, ok := l.out.(io.Closer); ok && l.out != os.Stdout && l.out != os.Stderr {
		return c.Close()
	}
	return nil
}
