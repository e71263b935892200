package consistency

import (
	"math"
	"strings"
	"testing"

	"github.com/dshills/valuelens/internal/locale"
	"github.com/dshills/valuelens/internal/schema"
)

func en() locale.Locale { return locale.Get("en") }

func TestNormalizeScoresClampsAndDedupes(t *testing.T) {
	p := &schema.Profile{
		ValueOrientation: []schema.ValueOrientation{
			{Label: "ideology", Score: 0.9},
			{Label: "LEFT_RIGHT", Score: -0.3}, // same canonical label
			{Label: "privacy", Score: 2.5},
		},
	}
	NormalizeScores(p, nil)

	if len(p.ValueOrientation) != 2 {
		t.Fatalf("entries = %d, want 2 after dedup", len(p.ValueOrientation))
	}
	if p.ValueOrientation[0].Label != "ideology" || p.ValueOrientation[0].Score != 0.9 {
		t.Errorf("merged entry = %+v, want ideology at 0.9 (larger |score| wins)", p.ValueOrientation[0])
	}
	if p.ValueOrientation[1].Score != 1 {
		t.Errorf("privacy score = %v, want clamped to 1", p.ValueOrientation[1].Score)
	}
}

func TestNormalizeScoresZeroFillsMissing(t *testing.T) {
	p := &schema.Profile{
		ValueOrientation: []schema.ValueOrientation{{Label: "ideology", Score: 0.5}},
	}
	NormalizeScores(p, []string{"ideology", "authority"})

	if len(p.ValueOrientation) != 2 {
		t.Fatalf("entries = %d, want 2", len(p.ValueOrientation))
	}
	last := p.ValueOrientation[1]
	if last.Label != "authority" || last.Score != 0 {
		t.Errorf("filled entry = %+v, want authority at 0", last)
	}
}

func TestNormalizeScoresTieKeepsFirst(t *testing.T) {
	p := &schema.Profile{
		ValueOrientation: []schema.ValueOrientation{
			{Label: "ideology", Score: 0.6},
			{Label: "ideology", Score: -0.6},
		},
	}
	NormalizeScores(p, nil)
	if len(p.ValueOrientation) != 1 || p.ValueOrientation[0].Score != 0.6 {
		t.Errorf("tie result = %+v, want the first entry kept", p.ValueOrientation)
	}
}

func TestAdjustScoresByEvidence(t *testing.T) {
	p := &schema.Profile{
		ValueOrientation: []schema.ValueOrientation{
			{Label: "authority", Score: 0.8},   // unsupported, strong → ×0.6
			{Label: "privacy", Score: 0.5},     // unsupported, moderate → ×0.8
			{Label: "ideology", Score: 0.9},    // supported by phrase
			{Label: "nostalgia", Score: 0.2},   // below every cutoff
			{Label: "mystery_axis", Score: 0.9}, // not in catalog, untouched
		},
		Evidence: []schema.Evidence{
			{Quote: "they are clearly conservative right-leaning in every post", Analysis: "direction", SourceTitle: "p1"},
		},
	}
	AdjustScoresByEvidence(p)

	want := []float64{0.8 * 0.6, 0.5 * 0.8, 0.9, 0.2, 0.9}
	for i, w := range want {
		if got := p.ValueOrientation[i].Score; math.Abs(got-w) > 1e-9 {
			t.Errorf("entry %d (%s) score = %v, want %v", i, p.ValueOrientation[i].Label, got, w)
		}
	}
}

func TestAdjustScoresSupportByID(t *testing.T) {
	p := &schema.Profile{
		ValueOrientation: []schema.ValueOrientation{{Label: "climate_concern", Score: -0.9}},
		Evidence: []schema.Evidence{
			{Quote: "q", Analysis: "score driven by climate_concern signals", SourceTitle: "p1"},
		},
	}
	AdjustScoresByEvidence(p)
	if p.ValueOrientation[0].Score != -0.9 {
		t.Errorf("score = %v, want untouched (supported by id)", p.ValueOrientation[0].Score)
	}
}

func TestEnforceSummaryAlignmentFastIsNoop(t *testing.T) {
	p := &schema.Profile{
		Summary:          "Original summary.",
		ValueOrientation: []schema.ValueOrientation{{Label: "authority", Score: 0.9}},
	}
	EnforceSummaryAlignment(p, schema.ModeFast, en())
	if p.Summary != "Original summary." {
		t.Errorf("fast mode mutated summary: %q", p.Summary)
	}
}

func TestEnforceSummaryAlignmentAppendsStrongClause(t *testing.T) {
	p := &schema.Profile{
		Summary:          "Writes a lot about daily life.",
		ValueOrientation: []schema.ValueOrientation{{Label: "authority", Score: 0.8}},
	}
	EnforceSummaryAlignment(p, schema.ModeBalanced, en())

	if !strings.Contains(p.Summary, "strongly defers to authority") {
		t.Errorf("summary = %q, want appended strong clause", p.Summary)
	}
	if !strings.HasPrefix(p.Summary, "Writes a lot about daily life.") {
		t.Errorf("summary prefix lost: %q", p.Summary)
	}
}

func TestEnforceSummaryAlignmentSkipsMentionedLabels(t *testing.T) {
	p := &schema.Profile{
		Summary:          "The author clearly defers to authority in most threads.",
		ValueOrientation: []schema.ValueOrientation{{Label: "authority", Score: 0.8}},
	}
	before := p.Summary
	EnforceSummaryAlignment(p, schema.ModeBalanced, en())
	if p.Summary != before {
		t.Errorf("already-aligned summary was modified: %q", p.Summary)
	}
}

func TestEnforceSummaryAlignmentRespectsTopKAndCutoff(t *testing.T) {
	p := &schema.Profile{
		Summary: "Nothing relevant here.",
		ValueOrientation: []schema.ValueOrientation{
			{Label: "authority", Score: 0.9},
			{Label: "privacy", Score: 0.6},
			{Label: "ideology", Score: 0.5},
			{Label: "nostalgia", Score: 0.2}, // below cutoff, never mentioned
		},
	}
	EnforceSummaryAlignment(p, schema.ModeBalanced, en())

	// Balanced takes the top two only.
	if !strings.Contains(p.Summary, "defers to authority") || !strings.Contains(p.Summary, "guards personal privacy") {
		t.Errorf("summary missing top-2 clauses: %q", p.Summary)
	}
	if strings.Contains(p.Summary, "conservative right-leaning") {
		t.Errorf("summary mentions third label in balanced mode: %q", p.Summary)
	}
	if strings.Contains(p.Summary, "nostalgic") {
		t.Errorf("summary mentions sub-cutoff label: %q", p.Summary)
	}
}

func TestDetectSummaryConflicts(t *testing.T) {
	p := &schema.Profile{
		// Positive authority score, but the summary claims the left phrase.
		Summary:          "The author questions authority at every turn.",
		ValueOrientation: []schema.ValueOrientation{{Label: "authority", Score: 0.8}},
	}
	got := DetectSummaryConflicts(p)
	if len(got) != 1 || !got[0].Conflict || got[0].Label != "authority" {
		t.Errorf("conflicts = %+v, want authority conflict", got)
	}

	// Expected phrase present: no conflict even if wording is mixed.
	p.Summary = "The author defers to authority, though they once questioned it."
	got = DetectSummaryConflicts(p)
	if got[0].Conflict {
		t.Errorf("conflict reported despite expected phrase present")
	}
}

func TestDetectSummaryConflictsSkipsOpaqueLabels(t *testing.T) {
	p := &schema.Profile{
		Summary:          "whatever",
		ValueOrientation: []schema.ValueOrientation{{Label: "favorite_pizza_topping", Score: 0.9}},
	}
	if got := DetectSummaryConflicts(p); len(got) != 0 {
		t.Errorf("opaque labels must not participate: %+v", got)
	}
}

func TestResolveSummaryConflicts(t *testing.T) {
	p := &schema.Profile{
		Summary:          "The author Questions Authority relentlessly online.",
		ValueOrientation: []schema.ValueOrientation{{Label: "authority", Score: 0.8}},
	}
	ResolveSummaryConflicts(p, en())

	if !strings.HasPrefix(p.Summary, en().AlignmentNotice) {
		t.Errorf("summary missing alignment notice: %q", p.Summary)
	}
	if strings.Contains(strings.ToLower(p.Summary), "questions authority") {
		t.Errorf("opposite phrase survived resolution: %q", p.Summary)
	}
}

func TestResolveSummaryConflictsNoopWithoutConflict(t *testing.T) {
	p := &schema.Profile{
		Summary:          "The author defers to authority.",
		ValueOrientation: []schema.ValueOrientation{{Label: "authority", Score: 0.8}},
	}
	before := p.Summary
	ResolveSummaryConflicts(p, en())
	if p.Summary != before {
		t.Errorf("conflict-free summary was modified: %q", p.Summary)
	}
}
