// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up structured logging with [log/slog].
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level will be shown. The default depends on build tags: debug
// builds use [slog.LevelDebug], release builds [slog.LevelWarn], and all
// others [slog.LevelInfo].
var UserLevel = new(slog.LevelVar)

func init() {
	UserLevel.Set(defaultUserLevel)
}

// ParseLevel returns the level with the given case insensitive name:
// debug, info, warn or error. An empty name returns the build default.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return defaultUserLevel, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return defaultUserLevel, fmt.Errorf("logx: unknown log level %q", name)
}

// SetDefault makes a [Handler] writing to w at [UserLevel]
// the default slog logger.
func SetDefault(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w, UserLevel)))
}
