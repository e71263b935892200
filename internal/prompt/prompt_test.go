package prompt

import (
	"strings"
	"testing"

	"github.com/dshills/valuelens/internal/locale"
	"github.com/dshills/valuelens/internal/schema"
)

func buildEN(t *testing.T, mode schema.Mode, category, text string) string {
	t.Helper()
	return BuildSystemPrompt(mode, category, text, locale.Get("en"))
}

func TestSystemPromptSectionOrder(t *testing.T) {
	p := buildEN(t, schema.ModeBalanced, "politics", "the election is near")

	role := strings.Index(p, "sociology researcher")
	format := strings.Index(p, "Output ONLY valid JSON")
	rules := strings.Index(p, "【Category Relevance】")
	fewshot := strings.Index(p, "【Few-Shot Examples】")
	cat := strings.Index(p, "【Label Catalog】")
	for name, idx := range map[string]int{
		"role": role, "format": format, "rules": rules, "few-shot": fewshot, "catalog": cat,
	} {
		if idx < 0 {
			t.Fatalf("prompt is missing the %s section", name)
		}
	}
	if !(role < format && format < rules && rules < fewshot && fewshot < cat) {
		t.Errorf("sections out of order: role=%d format=%d rules=%d fewshot=%d catalog=%d",
			role, format, rules, fewshot, cat)
	}
}

func TestRulesAreNumberedAndTagged(t *testing.T) {
	p := buildEN(t, schema.ModeDeep, "politics", "text")
	for _, want := range []string{
		"【Category Relevance】",
		"【Chain of Thought】",
		"【Neutrality】",
		"【Canonical Label IDs】",
		"【Scoring Convention】",
		"【Output Language】",
		"【Sensitive Content】",
		"【Summary Consistency】",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("deep prompt missing rule %s", want)
		}
	}
	if !strings.Contains(p, "1. 【Category Relevance】") {
		t.Error("rules are not numbered from 1")
	}
}

func TestFastPromptOmitsChainOfThought(t *testing.T) {
	p := buildEN(t, schema.ModeFast, "politics", "text")
	if strings.Contains(p, "【Chain of Thought】") {
		t.Error("fast prompt must not carry the chain-of-thought rule")
	}
	if strings.Contains(p, "\"reasoning\"") {
		t.Error("fast format instructions must not mention reasoning")
	}
	if strings.Contains(p, "\"evidence\"") {
		t.Error("fast format instructions must not mention evidence")
	}
}

func TestScoringConventionStated(t *testing.T) {
	p := buildEN(t, schema.ModeBalanced, "economy", "text")
	if !strings.Contains(p, "+1.0") || !strings.Contains(p, "-1.0") {
		t.Error("scoring convention must state both score poles")
	}
}

func TestCatalogLineFormat(t *testing.T) {
	p := buildEN(t, schema.ModeDeep, "politics", "text")
	if !strings.Contains(p, "- 【ideology】: progressive left-leaning ↔ conservative right-leaning (politics)") {
		t.Error("catalog line format drifted from the wire contract")
	}
}

func TestFastCatalogIsTrimmed(t *testing.T) {
	fast := buildEN(t, schema.ModeFast, "politics", "text")
	deep := buildEN(t, schema.ModeDeep, "politics", "text")
	if count(fast, "- 【") >= count(deep, "- 【") {
		t.Error("fast prompt must list fewer catalog labels than deep")
	}
	// The highest-weight politics label survives the trim.
	if !strings.Contains(fast, "【ideology】") {
		t.Error("fast prompt must keep the highest-weight label")
	}
}

func TestFastFewShotUsesFallbackPair(t *testing.T) {
	// Fast mode skips retrieval, so the few-shot block is the static pair
	// regardless of input text.
	a := buildEN(t, schema.ModeFast, "politics", "election parliament vote")
	b := buildEN(t, schema.ModeFast, "politics", "totally different words here")
	ai := a[strings.Index(a, "【Few-Shot Examples】"):strings.Index(a, "【Label Catalog】")]
	bi := b[strings.Index(b, "【Few-Shot Examples】"):strings.Index(b, "【Label Catalog】")]
	if ai != bi {
		t.Error("fast few-shot block must not depend on the input text")
	}
	if count(ai, "Example ") != 2 {
		t.Errorf("fallback block has %d examples, want 2", count(ai, "Example "))
	}
}

func TestOutputLanguageFollowsLocale(t *testing.T) {
	zh := BuildSystemPrompt(schema.ModeBalanced, "politics", "text", locale.Get("zh"))
	if !strings.Contains(zh, locale.Get("zh").LanguageRule) {
		t.Error("zh prompt must carry the zh output-language rule")
	}
}

func TestRetryFeedback(t *testing.T) {
	fb := BuildRetryFeedback(schema.ModeBalanced, "schema: value_orientation[0].score: out of range")
	if !strings.Contains(fb, "【Previous Attempt Error】") {
		t.Error("feedback missing the error header")
	}
	if !strings.Contains(fb, "out of range") {
		t.Error("feedback must embed the failing error message")
	}
	if !strings.Contains(fb, "Output ONLY valid JSON") {
		t.Error("feedback must restate the format instructions")
	}

	fast := BuildRetryFeedback(schema.ModeFast, "parse failure")
	if len(fast) >= len(fb) {
		t.Error("fast feedback should be terser than balanced feedback")
	}
}

func count(s, sub string) int { return strings.Count(s, sub) }
