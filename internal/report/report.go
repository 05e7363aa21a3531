// Package report renders solve results for the terminal and for other
// programs.
//
// Supported formats are text, json, yaml and html. Text and html output can
// group digits ("4,361") for readability; json and yaml always carry the
// raw integer.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	perrors "github.com/conneroisu/gondola/internal/errors"
	"github.com/conneroisu/gondola/internal/puzzle"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatHTML}

// ParseFormat validates name and returns the matching Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	names := make([]string, len(Formats))
	for i, known := range Formats {
		names[i] = string(known)
	}
	return "", perrors.NewValidationError(
		perrors.ErrCodeInvalidFormat,
		fmt.Sprintf("unsupported format %q (supported: %s)", name, strings.Join(names, ", ")),
	)
}

// Options control rendering.
type Options struct {
	Format      Format
	GroupDigits bool
}

// Renderer writes results in one format.
type Renderer struct {
	opts    Options
	printer *message.Printer
}

// NewRenderer validates opts and builds a renderer.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return nil, err
	}
	opts.Format = format
	return &Renderer{
		opts:    opts,
		printer: message.NewPrinter(language.English),
	}, nil
}

// FormatAnswer formats n honouring GroupDigits.
func (r *Renderer) FormatAnswer(n int64) string {
	if r.opts.GroupDigits {
		return r.printer.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d", n)
}

// Render writes results to w.
func (r *Renderer) Render(ctx context.Context, w io.Writer, results []puzzle.Result) error {
	switch r.opts.Format {
	case FormatJSON:
		return writeJSON(w, emptyIfNil(results))
	case FormatYAML:
		return writeYAML(w, emptyIfNil(results))
	case FormatHTML:
		return resultsTable(r, results).Render(ctx, w)
	default:
		return r.renderText(w, results)
	}
}

func (r *Renderer) renderText(w io.Writer, results []puzzle.Result) error {
	lastDay := 0
	for _, res := range results {
		if res.Day != lastDay {
			if _, err := fmt.Fprintf(w, "--- Day %d: %s ---\n", res.Day, res.Title); err != nil {
				return err
			}
			lastDay = res.Day
		}
		if _, err := fmt.Fprintf(w, "Day %d part %d: %s\n", res.Day, res.Part, r.FormatAnswer(res.Answer)); err != nil {
			return err
		}
	}
	return nil
}

// DayInfo describes a registered solver for listings.
type DayInfo struct {
	Day   int    `json:"day" yaml:"day"`
	Title string `json:"title" yaml:"title"`
}

// Describe lists the solvers of a registry.
func Describe(registry *puzzle.Registry) []DayInfo {
	all := registry.All()
	infos := make([]DayInfo, len(all))
	for i, s := range all {
		infos[i] = DayInfo{Day: s.Day(), Title: s.Title()}
	}
	return infos
}

// RenderDays writes a listing of days to w.
func (r *Renderer) RenderDays(ctx context.Context, w io.Writer, days []DayInfo) error {
	switch r.opts.Format {
	case FormatJSON:
		return writeJSON(w, emptyIfNil(days))
	case FormatYAML:
		return writeYAML(w, emptyIfNil(days))
	case FormatHTML:
		return daysList(days).Render(ctx, w)
	default:
		for _, d := range days {
			if _, err := fmt.Fprintf(w, "%2d  %s\n", d.Day, d.Title); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// resultsTable renders results as an HTML table.
func resultsTable(r *Renderer, results []puzzle.Result) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<table class=\"results\">\n")
		b.WriteString("<thead><tr><th>Day</th><th>Title</th><th>Part</th><th>Answer</th></tr></thead>\n<tbody>\n")
		for _, res := range results {
			fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td>%d</td><td>%s</td></tr>\n",
				res.Day,
				templ.EscapeString(res.Title),
				res.Part,
				templ.EscapeString(r.FormatAnswer(res.Answer)),
			)
		}
		b.WriteString("</tbody>\n</table>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// daysList renders registered days as an HTML list.
func daysList(days []DayInfo) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<ul class=\"days\">\n")
		for _, d := range days {
			fmt.Fprintf(&b, "<li>Day %d: %s</li>\n", d.Day, templ.EscapeString(d.Title))
		}
		b.WriteString("</ul>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
