package form

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring a Form
type Option func(*Form)

// WithConfig replaces all engine settings at once
func WithConfig(cfg Config) Option {
	return func(f *Form) {
		f.validateOnChange = cfg.ValidateOnChange
		f.validateOnBlur = cfg.ValidateOnBlur
		f.debounce = max(cfg.Debounce, 0)
	}
}

func WithValidateOnChange(enabled bool) Option {
	return func(f *Form) {
		f.validateOnChange = enabled
	}
}

func WithValidateOnBlur(enabled bool) Option {
	return func(f *Form) {
		f.validateOnBlur = enabled
	}
}

// WithDebounce sets the change-validation delay. Negative values are treated as zero.
func WithDebounce(d time.Duration) Option {
	return func(f *Form) {
		f.debounce = max(d, 0)
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

func withReleaser(release func()) Option {
	return func(f *Form) {
		f.release = release
	}
}
