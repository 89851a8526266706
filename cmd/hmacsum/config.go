package main

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// defaultBufferSize is the read-buffer size used when -p is absent or
// invalid; values <= 0 or out of range fall back to this, with a stderr
// (logrus.Warn) notice.
const defaultBufferSize = 32768

// maxBufferSize is this build's platform ssize-max stand-in: a read buffer
// larger than this is obviously a typo'd flag, not a real request.
const maxBufferSize = 1 << 30

// loadConfig wires -p's default and an environment-variable override
// (HMACSUM_BUFFER_SIZE) through viper, following the cobra+viper pairing
// used throughout getamis/alice and justincranford/cryptoutil's CLIs.
func loadConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("HMACSUM")
	v.AutomaticEnv()
	v.SetDefault("buffer_size", defaultBufferSize)
	return v
}

// parseBufferSize accepts k/K/m/M unit suffixes on the raw buffer-size
// string. Any value that doesn't parse, or that falls outside
// (0, maxBufferSize], is rejected and replaced with defaultBufferSize,
// with a warning logged by the caller.
func parseBufferSize(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultBufferSize, true
	}

	multiplier := 1
	switch {
	case strings.HasSuffix(raw, "k") || strings.HasSuffix(raw, "K"):
		multiplier = 1024
		raw = raw[:len(raw)-1]
	case strings.HasSuffix(raw, "m") || strings.HasSuffix(raw, "M"):
		multiplier = 1024 * 1024
		raw = raw[:len(raw)-1]
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	size := n * multiplier
	if size <= 0 || size > maxBufferSize {
		return 0, false
	}
	return size, true
}

// resolveBufferSize parses raw via parseBufferSize, falling back to
// defaultBufferSize with a logged warning on any failure.
func resolveBufferSize(raw string) int {
	size, ok := parseBufferSize(raw)
	if !ok {
		logrus.Warnf("hmacsum: invalid buffer size %q, using default of %d bytes", raw, defaultBufferSize)
		return defaultBufferSize
	}
	return size
}
