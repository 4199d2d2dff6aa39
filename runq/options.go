// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package runq

import (
	"log/slog"
	"time"
)

const (
	// DefaultBatch is the number of closures run per RunClosures call.
	DefaultBatch = 64
	// DefaultSlowThreshold is the run time above which a closure is reported.
	DefaultSlowThreshold = 500 * time.Millisecond
)

type config struct {
	batch  int
	slow   time.Duration
	logger *slog.Logger
}

func defaultConfig() config {
	return config{
		batch:  DefaultBatch,
		slow:   DefaultSlowThreshold,
		logger: slog.New(slog.DiscardHandler),
	}
}

// Option customizes a Queue.
type Option func(*config)

// WithBatch sets how many closures one RunClosures call may run.
// Values below 1 keep the default.
func WithBatch(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.batch = n
		}
	}
}

// WithSlowThreshold sets the run time above which a closure is logged.
// Zero disables the check.
func WithSlowThreshold(d time.Duration) Option {
	return func(c *config) {
		c.slow = d
	}
}

// WithLogger sets the logger. Logging is disabled by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
