// Package logging provides the CLI's slog handlers.
package logging

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"log/slog"

	"github.com/fatih/color"
)

// PrettyHandlerOptions configures a PrettyHandler.
type PrettyHandlerOptions struct {
	SlogOpts slog.HandlerOptions
}

// PrettyHandler writes one colored line per record:
//
//	[15:04:05.000] INFO: message {"key":"value"}
//
// Level filtering and ReplaceAttr come from the embedded JSON handler's
// options.
type PrettyHandler struct {
	slog.Handler
	l     *log.Logger
	opts  slog.HandlerOptions
	attrs []slog.Attr
	group string
}

// NewPrettyHandler returns a handler writing to out.
func NewPrettyHandler(out io.Writer, opts PrettyHandlerOptions) *PrettyHandler {
	return &PrettyHandler{
		Handler: slog.NewJSONHandler(out, &opts.SlogOpts),
		l:       log.New(out, "", 0),
		opts:    opts.SlogOpts,
	}
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"
	switch {
	case r.Level >= slog.LevelError:
		level = color.RedString(level)
	case r.Level >= slog.LevelWarn:
		level = color.YellowString(level)
	case r.Level >= slog.LevelInfo:
		level = color.BlueString(level)
	default:
		level = color.MagentaString(level)
	}

	fields := make(map[string]any, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		h.put(fields, nil, a)
	}
	target := fields
	var groups []string
	if h.group != "" {
		target = make(map[string]any, r.NumAttrs())
		fields[h.group] = target
		groups = []string{h.group}
	}
	r.Attrs(func(a slog.Attr) bool {
		h.put(target, groups, a)
		return true
	})

	b, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	ts := r.Time.Format("[15:04:05.000]")
	h.l.Println(ts, level, color.CyanString(r.Message), color.WhiteString(string(b)))
	return nil
}

func (h *PrettyHandler) put(fields map[string]any, groups []string, a slog.Attr) {
	if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
		a = h.opts.ReplaceAttr(groups, a)
	}
	if a.Equal(slog.Attr{}) {
		return
	}
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		sub := make(map[string]any)
		for _, ga := range v.Group() {
			h.put(sub, append(groups, a.Key), ga)
		}
		if a.Key == "" {
			for k, sv := range sub {
				fields[k] = sv
			}
			return
		}
		fields[a.Key] = sub
		return
	}
	val := v.Any()
	if err, ok := val.(error); ok {
		val = err.Error()
	}
	fields[a.Key] = val
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.Handler = h.Handler.WithAttrs(attrs)
	next.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &next
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.Handler = h.Handler.WithGroup(name)
	if name != "" {
		next.group = name
	}
	return &next
}
