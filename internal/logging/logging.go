// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options select the level, format and destination of log output.
type Options struct {
	Level  string // panic, fatal, error, warn, info, debug, trace
	Format string // text or json
	Debug  bool   // forces debug level
	Out    io.Writer
}

// New returns a logger configured from opts. Empty fields mean info level,
// text format and stderr.
func New(opts Options) (*logrus.Logger, error) {
	l := logrus.New()
	if opts.Out != nil {
		l.SetOutput(opts.Out)
	}

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", opts.Format)
	}

	level := logrus.InfoLevel
	if opts.Level != "" {
		lv, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = lv
	}
	if opts.Debug {
		level = logrus.DebugLevel
	}
	l.SetLevel(level)
	return l, nil
}
