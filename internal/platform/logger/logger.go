package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var levelNames = map[Level]string{Debug: "debug", Info: "info", Warn: "warn", Error: "error"}

// ParseLevel: vacío o desconocido => Info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return "info"
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  Level
	Format Format
	App    string
	Output io.Writer        // default os.Stdout
	Now    func() time.Time // default time.Now
}

const DefaultApp = "pet-digital-twin"

// sink es compartido por el logger raíz y todos sus hijos (With/Component).
type sink struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	format Format
	now    func() time.Time
}

// StdLogger escribe una línea por evento; ts, level y msg van siempre primero.
type StdLogger struct {
	sink   *sink
	fields map[string]any
}

func New(opts Options) Logger {
	s := &sink{
		out:    opts.Output,
		level:  opts.Level,
		format: opts.Format,
		now:    opts.Now,
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.format == "" {
		s.format = FormatText
	}
	if s.now == nil {
		s.now = time.Now
	}

	fields := map[string]any{}
	if app := strings.TrimSpace(opts.App); app != "" {
		fields["app"] = app
	}
	return &StdLogger{sink: s, fields: fields}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME (default pet-digital-twin)
func NewFromEnv() Logger {
	app := os.Getenv("APP_NAME")
	if strings.TrimSpace(app) == "" {
		app = DefaultApp
	}
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    app,
	})
}

// Component es el logger hijo de un módulo (pets, ledger, cart...).
func Component(l Logger, name string) Logger {
	if l == nil {
		return Nop()
	}
	return l.With(map[string]any{"component": name})
}

// Nop descarta todo; default de los servicios cuando no se inyecta logger.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (n nopLogger) With(map[string]any) Logger { return n }
func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}

func (l *StdLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &StdLogger{sink: l.sink, fields: merge(l.fields, fields)}
}

func (l *StdLogger) Debug(msg string, fields map[string]any) { l.write(Debug, msg, fields) }
func (l *StdLogger) Info(msg string, fields map[string]any)  { l.write(Info, msg, fields) }
func (l *StdLogger) Warn(msg string, fields map[string]any)  { l.write(Warn, msg, fields) }
func (l *StdLogger) Error(msg string, fields map[string]any) { l.write(Error, msg, fields) }

func (l *StdLogger) write(lvl Level, msg string, fields map[string]any) {
	s := l.sink
	if lvl < s.level {
		return
	}

	extra := merge(l.fields, fields)
	ts := s.now().UTC().Format(time.RFC3339Nano)

	var line string
	if s.format == FormatJSON {
		entry := merge(extra, map[string]any{"ts": ts, "level": lvl.String(), "msg": msg})
		b, err := json.Marshal(entry)
		if err != nil {
			b, _ = json.Marshal(map[string]any{"ts": ts, "level": lvl.String(), "msg": msg, "log_err": err.Error()})
		}
		line = string(b)
	} else {
		line = formatText(ts, lvl, msg, extra)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.out, line+"\n")
}

// merge copia a y b en un mapa nuevo; b pisa a. Los error se guardan como string.
func merge(a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a)+len(b))
	for _, m := range []map[string]any{a, b} {
		for k, v := range m {
			if strings.TrimSpace(k) == "" {
				continue
			}
			if err, ok := v.(error); ok && err != nil {
				v = err.Error()
			}
			out[k] = v
		}
	}
	return out
}

func formatText(ts string, lvl Level, msg string, fields map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ts=%s level=%s msg=%s", ts, lvl, quote(msg))

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, quote(fmt.Sprint(fields[k])))
	}
	return b.String()
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
