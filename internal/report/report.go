// Package report renders advice records for the console.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/boozedog/smoovgarden/internal/advice"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// Format is an output format for Render.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML}

// FormatNames returns the supported formats as a comma-separated list.
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ParseFormat resolves a format name, accepting "md" and "yml" as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: %s)", s, FormatNames())
	}
}

// Render writes records to w in the given format.
func Render(w io.Writer, f Format, records []advice.Advice) error {
	switch f {
	case FormatText:
		return renderText(w, records)
	case FormatJSON:
		return renderJSON(w, records)
	case FormatYAML:
		return renderYAML(w, records)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(records))
		return err
	case FormatHTML:
		return renderHTML(w, records)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

func renderText(w io.Writer, records []advice.Advice) error {
	var b strings.Builder
	for i, a := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s Hemisphere\n", a.Hemisphere)
		fmt.Fprintf(&b, "It's %s %d – %s\n", a.MonthName, a.Year, a.Season)
		fmt.Fprintf(&b, "Tip: %s\n", a.Tip)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderJSON(w io.Writer, records []advice.Advice) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal advice: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func renderYAML(w io.Writer, records []advice.Advice) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal advice: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Markdown renders records as one section per hemisphere.
func Markdown(records []advice.Advice) string {
	var b strings.Builder
	for i, a := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s Hemisphere\n\n", a.Hemisphere)
		fmt.Fprintf(&b, "**%s %d** (%s, effective month %d)\n\n", a.MonthName, a.Year, a.Season, a.EffectiveMonth)
		fmt.Fprintf(&b, "%s\n", a.Tip)
	}
	return b.String()
}

func renderHTML(w io.Writer, records []advice.Advice) error {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(records)), &buf); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
