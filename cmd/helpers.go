package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/boozedog/smoovgarden/internal/advice"
	"github.com/boozedog/smoovgarden/internal/calendar"
	"github.com/boozedog/smoovgarden/internal/config"
	"github.com/boozedog/smoovgarden/internal/tips"
	"github.com/jonboulle/clockwork"
)

// loadResolver reads the tips table once and builds a resolver on the clock
// selected by --date.
func loadResolver(cfg *config.Config) (*advice.Resolver, error) {
	clock, err := clockFromFlag(flagDate)
	if err != nil {
		return nil, err
	}

	path, err := tipsPath(cfg)
	if err != nil {
		return nil, err
	}

	return advice.New(tips.Load(path), clock), nil
}

// tipsPath resolves the tips file: --tips wins over the config.
func tipsPath(cfg *config.Config) (string, error) {
	if flagTips != "" {
		return config.ExpandPath(flagTips)
	}
	path, err := cfg.TipsPath()
	if err != nil {
		return "", fmt.Errorf("get tips path: %w", err)
	}
	return path, nil
}

func clockFromFlag(s string) (clockwork.Clock, error) {
	if s == "" {
		return clockwork.NewRealClock(), nil
	}
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", s)
	}
	return clockwork.NewFakeClockAt(day), nil
}

// hemisphere resolves --hemisphere, falling back to the configured default.
func hemisphere(cfg *config.Config) calendar.Hemisphere {
	return calendar.ParseHemisphere(firstNonEmpty(flagHemisphere, cfg.Settings.Hemisphere))
}

// monthArg parses an optional month argument, defaulting to the current month.
func monthArg(args []string, r *advice.Resolver) (int, error) {
	if len(args) == 0 {
		return int(r.Today().Month()), nil
	}
	return parseMonth(args[0])
}

// parseMonth accepts any integer; out-of-range months are normalized later.
func parseMonth(s string) (int, error) {
	m, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid month %q: must be a number", s)
	}
	return m, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
