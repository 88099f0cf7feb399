package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the process logger. Logs go to path when set; otherwise
// to stderr when the frontend leaves the terminal alone, and nowhere when
// it draws on it. The returned func closes the log file.
func newLogger(path, level string, useStderr bool) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}

	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case useStderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           lvl,
	})
	log.SetDefault(logger)
	return logger, closeFn, nil
}
