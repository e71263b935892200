// Package render produces output from a finished schema.Profile.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dshills/valuelens/internal/catalog"
	"github.com/dshills/valuelens/internal/schema"
)

// RenderJSON produces a pretty-printed JSON representation of the profile.
// The output round-trips through json.Unmarshal back to an equal Profile.
func RenderJSON(p *schema.Profile) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("render: nil profile")
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: json marshal: %w", err)
	}
	return b, nil
}

// RenderMarkdown produces a GitHub-flavoured Markdown report for a profile,
// suitable for terminal output or review documents. Every orientation and
// evidence entry present in the profile will appear in the output.
func RenderMarkdown(p *schema.Profile) string {
	if p == nil {
		return ""
	}
	var sb strings.Builder

	sb.WriteString("## Value-Orientation Profile\n\n")
	if p.Nickname != "" {
		fmt.Fprintf(&sb, "**Nickname:** %s  \n", mdEscape(p.Nickname))
	}
	fmt.Fprintf(&sb, "**Topic:** %s\n\n", mdEscape(p.TopicClassification))

	if len(p.ValueOrientation) > 0 {
		sb.WriteString("## Scores\n\n")
		sb.WriteString("| Label | Score | Leaning |\n")
		sb.WriteString("|---|---|---|\n")
		for _, vo := range p.ValueOrientation {
			fmt.Fprintf(&sb, "| %s | %+.2f | %s |\n",
				mdEscape(vo.Label), vo.Score, leaning(vo))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "%s\n\n", p.Summary)

	if p.Reasoning != "" {
		fmt.Fprintf(&sb, "<details>\n<summary><strong>Reasoning</strong></summary>\n\n%s\n\n</details>\n\n",
			p.Reasoning)
	}

	if len(p.Evidence) > 0 {
		sb.WriteString("## Evidence\n\n")
		for _, ev := range p.Evidence {
			fmt.Fprintf(&sb, "<details>\n<summary><strong>%s</strong></summary>\n\n",
				mdEscape(ev.SourceTitle))
			fmt.Fprintf(&sb, "> %s\n\n", mdEscape(ev.Quote))
			fmt.Fprintf(&sb, "%s\n\n", mdEscape(ev.Analysis))
			if ev.SourceID != "" {
				fmt.Fprintf(&sb, "Source: `%s`\n\n", ev.SourceID)
			}
			sb.WriteString("</details>\n\n")
		}
	}

	return sb.String()
}

// leaning spells out the direction a score points to, when the label is in
// the catalog. Unknown labels render with a bare dash.
func leaning(vo schema.ValueOrientation) string {
	l, ok := catalog.Lookup(vo.Label)
	if !ok {
		return "-"
	}
	if vo.Score == 0 {
		return "neutral"
	}
	return mdEscape(l.PhraseFor(vo.Score))
}

// mdEscape replaces characters that would break Markdown table cells.
func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return s
}
