// Package cli holds flag handling shared by the clist commands.
package cli

import (
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	levels = regexp.MustCompile("^(trace|debug|info|warn|error|fatal)$")
	colors = regexp.MustCompile("^(no)?colou?rs?$")
	json   = regexp.MustCompile("^json$")
)

// SliceValue stores multi-value command line arguments.
type SliceValue []string

// String makes SliceValue implement pflag.Value.
func (s *SliceValue) String() string {
	return strings.Join(*s, ",")
}

// Set splits value on commas, skipping empty parts.
func (s *SliceValue) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if len(v) > 0 {
			*s = append(*s, v)
		}
	}
	return nil
}

func (s *SliceValue) Type() string {
	return "strings"
}

// ApplyLogFlags configures logger from tokens such as "debug", "nocolors"
// or "json". The level defaults to warn so reports are not interleaved with
// progress output.
func ApplyLogFlags(logger *log.Logger, logFlags SliceValue) error {
	logger.SetLevel(log.WarnLevel)

	for _, f := range logFlags {
		f = strings.ToLower(f)
		switch {
		case levels.MatchString(f):
			lvl, err := log.ParseLevel(f)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			logger.SetLevel(lvl)
		case colors.MatchString(f):
			if strings.HasPrefix(f, "no") {
				logger.SetFormatter(&log.TextFormatter{DisableColors: true})
			} else {
				logger.SetFormatter(&log.TextFormatter{ForceColors: true})
			}
		case json.MatchString(f):
			logger.SetFormatter(&log.JSONFormatter{})
		default:
			return fmt.Errorf("unknown log flag: %s", f)
		}
	}
	return nil
}
