package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/boozedog/smoovgarden/internal/advice"
	"github.com/boozedog/smoovgarden/internal/tips"
)

func TestAdvice_BothHemispheres(t *testing.T) {
	env := newTestEnv(t)
	env.writeStarterTips(t)

	out, err := env.runCmd(t, "advice", "--date", "2026-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"North Hemisphere",
		"It's January 2026 – Winter",
		"Tip: " + tips.Starter()[1],
		"South Hemisphere",
		"It's January 2026 – Summer",
		"Tip: " + tips.Starter()[7],
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want substring %q", out, want)
		}
	}
}

func TestAdvice_RootRunsAdvice(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runCmd(t, "--date", "2026-07-01", "--hemisphere", "north")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "It's July 2026 – Summer") {
		t.Errorf("output = %q, want July summer advice", out)
	}
	if !strings.Contains(out, "Tip: Water deeply and mulch in warm weather.") {
		t.Errorf("output = %q, want built-in July tip", out)
	}
	if strings.Contains(out, "South Hemisphere") {
		t.Errorf("output = %q, want north only", out)
	}
}

func TestAdvice_JSONSouth(t *testing.T) {
	env := newTestEnv(t)
	env.writeStarterTips(t)

	out, err := env.runCmd(t, "advice", "--date", "2026-01-15", "--hemisphere", "South", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var records []advice.Advice
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	got := records[0]
	if got.Hemisphere != "South" || got.EffectiveMonth != 7 || got.Season != "Summer" || got.Year != 2026 {
		t.Errorf("record = %+v, want South/7/Summer/2026", got)
	}
}

func TestAdvice_FormatFromConfig(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, "[settings]\nformat = \"markdown\"\n")

	out, err := env.runCmd(t, "advice", "--date", "2026-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "## North Hemisphere") {
		t.Errorf("output = %q, want markdown report", out)
	}
}

func TestAdvice_HTML(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runCmd(t, "advice", "--date", "2026-03-10", "--format", "html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<h2>South Hemisphere</h2>") {
		t.Errorf("output = %q, want html report", out)
	}
}

func TestAdvice_InvalidFormat(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runCmd(t, "advice", "--format", "pdf")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestAdvice_InvalidDate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runCmd(t, "advice", "--date", "15/01/2026")
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestAdvice_MalformedConfig(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, "[settings\n")

	_, err := env.runCmd(t, "advice")
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestAdvice_HemisphereFromConfig(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(t, "[settings]\nhemisphere = \"south\"\n")

	out, err := env.runCmd(t, "advice", "--date", "2026-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "South Hemisphere") || strings.Contains(out, "North Hemisphere") {
		t.Errorf("output = %q, want south only", out)
	}

	out, err = env.runCmd(t, "advice", "--date", "2026-01-15", "--hemisphere", "both")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "North Hemisphere") || !strings.Contains(out, "South Hemisphere") {
		t.Errorf("output = %q, want both hemispheres when flag overrides config", out)
	}
}
