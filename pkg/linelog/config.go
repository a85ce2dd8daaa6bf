package linelog

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/wayneeseguin/linelog/pkg/formatters"
	"github.com/wayneeseguin/linelog/pkg/types"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvFile        = "LINELOG_FILE"
	EnvRestrict    = "LINELOG_RESTRICT"
	EnvPanicOnFail = "LINELOG_PANIC_ON_FAIL"
	EnvUTC         = "LINELOG_UTC"
	EnvTimePattern = "LINELOG_TIME_PATTERN"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid linelog config")

// Config describes the state of the default sink.
type Config struct {
	Path             string           // Output file; "" leaves the current file alone
	PanicOnFail      bool             // Panic instead of dropping lines that fail to write
	RestrictedLevels []types.Severity // Severities that are never emitted

	// Override, when non-nil, becomes the default sink's override template
	// and UTC and TimePattern are ignored.
	Override *formatters.Template

	UTC         bool   // Render timestamps in UTC instead of local time
	TimePattern string // strftime pattern for the timestamp; "" keeps formatters.DefaultTimePattern

	ErrorHandler types.ErrorHandler // Observer for dropped lines; nil discards them
}

// DefaultConfig returns a Config that matches the state of a fresh default
// sink: no file, no restrictions, no override, failures dropped.
//
// Example:
//
//	config := linelog.DefaultConfig()
//	config.Path = "/var/log/app.log"
//	config.RestrictedLevels = []types.Severity{types.Information}
//	if err := linelog.Configure(config); err != nil {
//		log.Fatal(err)
//	}
func DefaultConfig() *Config {
	return &Config{
		ErrorHandler: types.DiscardErrors,
	}
}

// Validate checks the restricted severities and the time pattern.
func (c *Config) Validate() error {
	for _, level := range c.RestrictedLevels {
		if !level.Valid() {
			return errors.Wrapf(ErrInvalidConfig, "restricted level %d", int(level))
		}
	}
	if c.TimePattern != "" {
		if err := formatters.ValidatePattern(c.TimePattern); err != nil {
			return errors.Wrapf(ErrInvalidConfig, "time pattern %q: %v", c.TimePattern, err)
		}
	}
	return nil
}

// override builds the template installed by Configure, or reports false when
// the config asks for none.
func (c *Config) override() (formatters.Template, bool) {
	if c.Override != nil {
		return *c.Override, true
	}
	if !c.UTC && c.TimePattern == "" {
		return formatters.Template{}, false
	}

	tmpl := formatters.Default()
	if c.TimePattern != "" {
		tmpl = tmpl.SetToken(1, formatters.Timestamp(c.TimePattern))
	}
	if c.UTC {
		tmpl = tmpl.UTC()
	}
	return tmpl, true
}

// ConfigFromEnv starts from DefaultConfig and applies the LINELOG_*
// environment variables that are set.
func ConfigFromEnv() (*Config, error) {
	config := DefaultConfig()

	if value, exists := os.LookupEnv(EnvFile); exists {
		config.Path = value
	}
	if value, exists := os.LookupEnv(EnvRestrict); exists {
		levels, err := types.ParseSeverities(value)
		if err != nil {
			return nil, errors.Wrap(err, EnvRestrict)
		}
		config.RestrictedLevels = levels
	}
	if value, exists := os.LookupEnv(EnvPanicOnFail); exists {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, errors.Wrap(err, EnvPanicOnFail)
		}
		config.PanicOnFail = b
	}
	if value, exists := os.LookupEnv(EnvUTC); exists {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, errors.Wrap(err, EnvUTC)
		}
		config.UTC = b
	}
	if value, exists := os.LookupEnv(EnvTimePattern); exists {
		if err := formatters.ValidatePattern(value); err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "%s %q: %v", EnvTimePattern, value, err)
		}
		config.TimePattern = value
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Configure applies config to the default sink in one critical section.
// The restricted set is replaced, not extended. If the output file cannot
// be opened nothing is changed.
func Configure(config *Config) error {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return err
	}

	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()

	sink := defaultSink.sink
	if config.Path != "" && filepath.Clean(config.Path) != sink.Path() {
		if err := sink.Open(config.Path); err != nil {
			return err
		}
	}

	sink.SetPanicOnFail(config.PanicOnFail)
	sink.SetErrorHandler(config.ErrorHandler)
	sink.AllowLevels(sink.RestrictedLevels()...)
	sink.RestrictLevels(config.RestrictedLevels...)

	if tmpl, ok := config.override(); ok {
		sink.SetOverride(tmpl)
	} else {
		sink.ClearOverride()
	}
	return nil
}
