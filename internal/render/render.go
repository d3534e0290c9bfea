// Package render encodes prediction results for the command line.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"mbti-predictor/internal/domain"
	"mbti-predictor/internal/service"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Result writes result to w in the given format.
func Result(w io.Writer, format string, result domain.PersonalityResult) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatYAML:
		return writeYAML(w, result)
	case FormatText:
		return writeSummary(w, service.Summarize(result))
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// Comparison writes a similarity comparison. Text output shows the score and both types.
func Comparison(w io.Writer, format string, c domain.Comparison) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		return writeJSON(w, c)
	case FormatYAML:
		return writeYAML(w, c)
	case FormatText:
		_, err := fmt.Fprintf(w, "Similarity: %.2f\n  first:  %-4s overall %.1f\n  second: %-4s overall %.1f\n",
			c.Similarity, c.First.Type, c.First.OverallScore, c.Second.Type, c.Second.OverallScore)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// Questions writes the questionnaire. Text output numbers prompts from 1 and groups them by dimension.
func Questions(w io.Writer, format string, questions []domain.Question) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		return writeJSON(w, questions)
	case FormatYAML:
		return writeYAML(w, questions)
	case FormatText:
		current := ""
		for _, q := range questions {
			if q.Dimension != current {
				if current != "" {
					fmt.Fprintln(w)
				}
				current = q.Dimension
				fmt.Fprintf(w, "[%s]\n", current)
			}
			fmt.Fprintf(w, "%2d. %s\n", q.Index+1, q.Prompt)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func writeSummary(w io.Writer, s domain.AnalysisSummary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Type:                 %s\n", s.Type)
	fmt.Fprintf(&b, "Overall score:        %.1f\n", s.OverallScore)
	fmt.Fprintf(&b, "Preference alignment: %.1f\n", s.PreferenceAlignment)
	b.WriteString("Preferences:\n")
	for _, p := range s.Breakdown {
		fmt.Fprintf(&b, "  %-4s %-13s %5.1f%%\n", p.Dimension, p.Preference, p.Percentage)
	}
	b.WriteString("Dominant traits:\n")
	for _, t := range s.DominantTraits {
		fmt.Fprintf(&b, "  %-16s %5.1f\n", t.Trait, t.Value)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
