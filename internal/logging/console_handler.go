package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

const logTimestampLayout = "2006-01-02 15:04:05"

// consoleHandler renders one line per record:
//
//	2024-05-01 12:00:00 INFO [export] VWO-5-V5B-20222023 · wiskunde-b - saving json path=...
//
// The component, placement and subject fields move into the line prefix. The
// run id is only shown at debug level.
type consoleHandler struct {
	mu        *sync.Mutex
	writer    io.Writer
	level     slog.Level
	attrs     []slog.Attr
	group     string
	addSource bool
}

func newConsoleHandler(w io.Writer, level slog.Level, addSource bool) slog.Handler {
	return &consoleHandler{mu: &sync.Mutex{}, writer: w, level: level, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	var component, placement, subject string
	var fields []slog.Attr
	collect := func(attr slog.Attr) bool {
		switch attr.Key {
		case FieldComponent:
			component = attr.Value.String()
		case FieldPlacement:
			placement = attr.Value.String()
		case FieldSubject:
			subject = attr.Value.String()
		case FieldRunID:
			if record.Level <= slog.LevelDebug {
				fields = append(fields, attr)
			}
		default:
			if h.group != "" {
				attr.Key = h.group + "." + attr.Key
			}
			fields = append(fields, attr)
		}
		return true
	}
	for _, attr := range h.attrs {
		collect(attr)
	}
	record.Attrs(collect)

	var buf bytes.Buffer
	buf.WriteString(record.Time.In(time.Local).Format(logTimestampLayout))
	buf.WriteByte(' ')
	buf.WriteString(levelLabel(record.Level))
	if component != "" {
		buf.WriteString(" [" + component + "]")
	}
	if scope := composeScope(placement, subject); scope != "" {
		buf.WriteString(" " + scope)
	}
	buf.WriteString(" - " + record.Message)
	if h.addSource {
		if src := record.Source(); src != nil {
			buf.WriteString(" [" + filepath.Base(src.File) + ":" + strconv.Itoa(src.Line) + "]")
		}
	}
	for _, attr := range fields {
		buf.WriteByte(' ')
		buf.WriteString(attr.Key)
		buf.WriteByte('=')
		buf.WriteString(formatValue(attr.Value))
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func composeScope(placement, subject string) string {
	switch {
	case placement != "" && subject != "":
		return placement + " · " + subject
	case placement != "":
		return placement
	default:
		return subject
	}
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		name = clone.group + "." + name
	}
	clone.group = name
	return &clone
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
