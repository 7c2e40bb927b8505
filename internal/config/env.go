// This file contains environment variable overrides for the configuration.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet reports whether the flag was given on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// envOverride maps an environment key (without EnvPrefix) to its flag and
// a function applying the value. Unparsable values are ignored.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of environment overrides.
var envOverrides = []envOverride{
	{"STRATEGY", "strategy", func(c *AppConfig, v string) { c.Strategy = v }},
	{"LOOPS", "loops", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Loops = parsed
		}
	}},
	{"RANDOM", "random", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Random = parsed
		}
	}},
	{"SEED", "seed", func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}},
	{"TIMEOUT", "timeout", func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},
	{"METRICS_FILE", "metrics-file", func(c *AppConfig, v string) { c.MetricsFile = v }},
	{"LOG_LEVEL", "log-level", func(c *AppConfig, v string) { c.LogLevel = v }},
	{"QUIET", "quiet", func(c *AppConfig, v string) { c.Quiet = parseBoolEnv(v, c.Quiet) }},
	{"VERBOSE", "verbose", func(c *AppConfig, v string) { c.Verbose = parseBoolEnv(v, c.Verbose) }},
	{"NO_COLOR", "no-color", func(c *AppConfig, v string) { c.NoColor = parseBoolEnv(v, c.NoColor) }},
}

// parseBoolEnv accepts true/1/yes and false/0/no, case-insensitively, and
// returns defaultVal for anything else.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies LONGDIV_* values to every flag not set on the
// command line: CLI flags > environment > defaults.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, val)
		}
	}
}
