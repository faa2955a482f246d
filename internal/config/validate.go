package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atlanticdynamic/hostfixtures/internal/config/errz"
	"github.com/atlanticdynamic/hostfixtures/internal/logging"
	"github.com/atlanticdynamic/hostfixtures/internal/logging/writers"
)

// Validate checks every field and returns all problems joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.Version != VersionLatest {
		errs = append(errs, fmt.Errorf("%w: %q", errz.ErrUnsupportedConfigVer, c.Version))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: %d is outside 1-65535", errz.ErrInvalidPort, c.Port))
	}
	if strings.ContainsAny(c.Host, " /?#") {
		errs = append(errs, fmt.Errorf("%w: %q", errz.ErrInvalidHost, c.Host))
	}
	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("%w: %q", errz.ErrInvalidLogLevel, c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", errz.ErrInvalidLogFormat, c.Log.Format))
	}
	if writers.ParseWriterType(c.Log.Output) == writers.WriterTypeFile &&
		strings.Contains(c.Log.Output, "://") && !strings.HasPrefix(c.Log.Output, "file://") {
		errs = append(errs, fmt.Errorf("unsupported log output: %q", c.Log.Output))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", errz.ErrFailedToValidateConfig, errors.Join(errs...))
}
