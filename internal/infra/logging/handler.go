package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// lineHandler formats records as
//
//	[2025-12-30 09:32:51] [INFO] [task-T1] [activity] message key=value
//
// Groups are flattened into dotted keys.
type lineHandler struct {
	files *fileSet
	now   func() time.Time
	group string
	attrs []slog.Attr
	level slog.Level
}

var _ slog.Handler = (*lineHandler)(nil)

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.files.enabled() && level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	taskID, category := "", "board"
	var extra []string

	route := func(a slog.Attr, prefix string) {
		switch {
		case prefix == "" && a.Key == TaskKey:
			taskID = a.Value.String()
		case prefix == "" && a.Key == CategoryKey:
			if c := a.Value.String(); c != "" {
				category = c
			}
		default:
			extra = appendAttr(extra, prefix, a)
		}
	}
	for _, a := range h.attrs {
		route(a, "")
	}
	r.Attrs(func(a slog.Attr) bool {
		route(a, h.group)
		return true
	})

	ts := r.Time
	if h.now != nil {
		ts = h.now()
	}
	scope := "global"
	if taskID != "" {
		scope = "task-" + taskID
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] [%s] [%s] [%s] %s",
		ts.Format("2006-01-02 15:04:05"), levelName(r.Level), scope, category, r.Message)
	for _, kv := range extra {
		b.WriteByte(' ')
		b.WriteString(kv)
	}
	b.WriteByte('\n')

	return h.files.write(taskID, b.String())
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	h2.attrs = append(h2.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		h2.attrs = append(h2.attrs, a)
	}
	return &h2
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	h2.group = name
	return &h2
}

// appendAttr appends key=value pairs, expanding nested groups.
func appendAttr(dst []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}
	v := a.Value.String()
	if strings.ContainsAny(v, " \t\"=") {
		v = fmt.Sprintf("%q", v)
	}
	return append(dst, key+"="+v)
}

func levelName(level slog.Level) string {
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
