// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/muesli/termenv"
)

// Level colors, used when the output is a color terminal.
var (
	DebugColor = "#8a8a8a"
	InfoColor  = "#00afaf"
	WarnColor  = "#d7af00"
	ErrorColor = "#d70000"
)

// Handler is a [slog.Handler] that writes one line per record:
// the level (colored on terminals), the message and the attributes.
type Handler struct {
	mu     *sync.Mutex
	out    *termenv.Output
	level  slog.Leveler
	attrs  []byte
	prefix string
}

// NewHandler returns a [Handler] writing to w, showing records at
// or above level. Color is only used when w is a color terminal.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	return &Handler{mu: &sync.Mutex{}, out: termenv.NewOutput(w), level: level}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

// levelColor returns the level name in its color.
func (h *Handler) levelColor(l slog.Level) string {
	clr := InfoColor
	switch {
	case l >= slog.LevelError:
		clr = ErrorColor
	case l >= slog.LevelWarn:
		clr = WarnColor
	case l < slog.LevelInfo:
		clr = DebugColor
	}
	return h.out.String(fmt.Sprintf("%-5s", l.String())).Foreground(h.out.Color(clr)).String()
}

func appendAttr(b []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return b
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			b = appendAttr(b, prefix, ga)
		}
		return b
	}
	return fmt.Appendf(b, " %s%s=%v", prefix, a.Key, a.Value)
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	buf.WriteString(h.levelColor(r.Level))
	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	buf.Write(h.attrs)
	var b []byte
	r.Attrs(func(a slog.Attr) bool {
		b = appendAttr(b, h.prefix, a)
		return true
	})
	buf.Write(b)
	buf.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = bytes.Clone(h.attrs)
	for _, a := range attrs {
		nh.attrs = appendAttr(nh.attrs, h.prefix, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix += name + "."
	return &nh
}
