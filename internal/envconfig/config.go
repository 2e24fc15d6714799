// Package envconfig reads the runtime's settings from the environment.
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Var returns the trimmed value of key with surrounding quotes removed.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// LogLevel returns the log level selected by EDGE_DEBUG.
// Values: unset/false = INFO, true/1 = DEBUG, 2 = TRACE (DEBUG-4).
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("EDGE_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Uint returns a getter for an unsigned integer variable. Invalid values log
// a warning and yield defaultValue.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// Int64 returns a getter for a signed integer variable. Invalid values log a
// warning and yield defaultValue.
func Int64(key string, defaultValue int64) func() int64 {
	return func() int64 {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return n
			}
		}
		return defaultValue
	}
}

var (
	// BenchIterations is the number of timed calls per kernel in `edge bench`.
	BenchIterations = Uint("EDGE_BENCH_ITERATIONS", 100)
	// BenchSeed seeds the random inputs of `edge bench`.
	BenchSeed = Int64("EDGE_BENCH_SEED", 1)
)

// EnvVar documents one environment variable.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every supported variable with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"EDGE_DEBUG":            {"EDGE_DEBUG", LogLevel(), "Show additional debug information (e.g. EDGE_DEBUG=1)"},
		"EDGE_BENCH_ITERATIONS": {"EDGE_BENCH_ITERATIONS", BenchIterations(), "Timed calls per kernel in bench (default 100)"},
		"EDGE_BENCH_SEED":       {"EDGE_BENCH_SEED", BenchSeed(), "Seed for bench inputs (default 1)"},
	}
}

// Values returns the current value of every variable as a string.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
