// Package consistency reconciles a profile's numeric scores with its
// narrative summary. Deterministic local logic only; no LLM calls are made
// here. All operations mutate the given profile in place and are
// independently callable in any order.
package consistency

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/dshills/valuelens/internal/canonical"
	"github.com/dshills/valuelens/internal/catalog"
	"github.com/dshills/valuelens/internal/locale"
	"github.com/dshills/valuelens/internal/schema"
)

// Evidence-damping thresholds: high-magnitude scores that nothing in the
// evidence supports are pulled toward zero.
const (
	strongCutoff   = 0.7
	strongFactor   = 0.6
	moderateCutoff = 0.4
	moderateFactor = 0.8
)

// alignCutoff is the minimum |score| a label needs before the alignment
// pass will speak about it.
const alignCutoff = 0.3

// NormalizeScores clamps every score into [-1, 1], collapses duplicate
// canonical labels keeping the entry with the larger |score| (the earlier
// entry wins a tie), and appends a zero-score entry for every id in
// labelIDs that the profile does not mention.
func NormalizeScores(p *schema.Profile, labelIDs []string) {
	type slot struct {
		idx   int
		score float64
	}
	kept := map[string]slot{}
	var order []string

	for _, vo := range p.ValueOrientation {
		label := canonical.Normalize(vo.Label)
		score := schema.ClampScore(vo.Score)
		if prev, ok := kept[label]; ok {
			if math.Abs(score) > math.Abs(prev.score) {
				kept[label] = slot{idx: prev.idx, score: score}
			}
			continue
		}
		kept[label] = slot{idx: len(order), score: score}
		order = append(order, label)
	}

	out := make([]schema.ValueOrientation, len(order))
	for label, s := range kept {
		out[s.idx] = schema.ValueOrientation{Label: label, Score: s.score}
	}
	for _, id := range labelIDs {
		if _, ok := kept[id]; !ok {
			out = append(out, schema.ValueOrientation{Label: id, Score: 0})
		}
	}
	p.ValueOrientation = out
}

// AdjustScoresByEvidence dampens high-magnitude scores the evidence does
// not support. A label is supported when the combined evidence text
// contains its id, its name (id with spaces), or its resulting phrase.
// Labels that do not resolve to a catalog entry are left untouched; they
// cannot be checked.
func AdjustScoresByEvidence(p *schema.Profile) {
	var combined strings.Builder
	for _, ev := range p.Evidence {
		combined.WriteString(ev.Quote)
		combined.WriteString(" ")
		combined.WriteString(ev.Analysis)
		combined.WriteString(" ")
	}
	text := strings.ToLower(combined.String())

	for i, vo := range p.ValueOrientation {
		l, ok := catalog.Lookup(vo.Label)
		if !ok {
			continue
		}
		if supported(text, l, vo.Score) {
			continue
		}
		abs := math.Abs(vo.Score)
		switch {
		case abs >= strongCutoff:
			p.ValueOrientation[i].Score = vo.Score * strongFactor
		case abs >= moderateCutoff:
			p.ValueOrientation[i].Score = vo.Score * moderateFactor
		}
	}
}

// supported reports whether the evidence text mentions the label in any of
// its recognizable spellings.
func supported(text string, l catalog.Label, score float64) bool {
	if text == "" {
		return false
	}
	name := strings.ReplaceAll(l.ID, "_", " ")
	for _, needle := range []string{l.ID, name, strings.ToLower(l.PhraseFor(score))} {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

// EnforceSummaryAlignment appends natural-language clauses for the top
// scored labels the summary fails to mention. A no-op in fast mode. The
// clause format is "<intensity> <resulting phrase>", joined with the
// locale connector.
func EnforceSummaryAlignment(p *schema.Profile, mode schema.Mode, loc locale.Locale) {
	topK := schema.ParamsFor(mode).AlignTopK
	if mode == schema.ModeFast || topK == 0 {
		return
	}

	ranked := make([]schema.ValueOrientation, 0, len(p.ValueOrientation))
	for _, vo := range p.ValueOrientation {
		if math.Abs(vo.Score) >= alignCutoff {
			ranked = append(ranked, vo)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].Score) > math.Abs(ranked[j].Score)
	})
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	lower := strings.ToLower(p.Summary)
	var clauses []string
	for _, vo := range ranked {
		l, ok := catalog.Lookup(vo.Label)
		if !ok {
			continue
		}
		phrase := l.PhraseFor(vo.Score)
		name := strings.ReplaceAll(l.ID, "_", " ")
		if strings.Contains(lower, strings.ToLower(phrase)) ||
			strings.Contains(lower, l.ID) ||
			strings.Contains(lower, name) {
			continue
		}
		clauses = append(clauses, loc.Intensity(math.Abs(vo.Score))+" "+phrase)
	}
	if len(clauses) == 0 {
		return
	}
	p.Summary = strings.TrimRight(p.Summary, " ") + loc.Connector + strings.Join(clauses, loc.Connector)
}

// Conflict reports one label's directional agreement with the summary.
type Conflict struct {
	Label    string
	Conflict bool
}

// DetectSummaryConflicts checks every catalog-resolvable label against the
// summary: a conflict is a summary that contains the phrase opposite to the
// score's sign while lacking the expected phrase.
func DetectSummaryConflicts(p *schema.Profile) []Conflict {
	lower := strings.ToLower(p.Summary)
	var out []Conflict
	for _, vo := range p.ValueOrientation {
		l, ok := catalog.Lookup(vo.Label)
		if !ok {
			continue
		}
		expected := strings.ToLower(l.PhraseFor(vo.Score))
		opposite := strings.ToLower(l.OppositePhraseFor(vo.Score))
		conflict := strings.Contains(lower, opposite) && !strings.Contains(lower, expected)
		out = append(out, Conflict{Label: l.ID, Conflict: conflict})
	}
	return out
}

// ResolveSummaryConflicts strips every opposite-direction phrase for
// conflicting labels from the summary and prepends the locale's alignment
// notice. Summaries without conflicts are left untouched.
func ResolveSummaryConflicts(p *schema.Profile, loc locale.Locale) {
	conflicts := DetectSummaryConflicts(p)
	byLabel := map[string]bool{}
	for _, c := range conflicts {
		if c.Conflict {
			byLabel[c.Label] = true
		}
	}
	if len(byLabel) == 0 {
		return
	}

	summary := p.Summary
	for _, vo := range p.ValueOrientation {
		if !byLabel[vo.Label] {
			continue
		}
		l, _ := catalog.Lookup(vo.Label)
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(l.OppositePhraseFor(vo.Score)))
		summary = re.ReplaceAllString(summary, "")
	}
	summary = strings.Join(strings.Fields(summary), " ")
	p.Summary = loc.AlignmentNotice + summary
}
