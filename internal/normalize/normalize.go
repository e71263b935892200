// Package normalize repairs raw LLM response text into parseable profile
// JSON. It is deliberately tolerant: every step is skipped when the prior
// one already produced valid JSON, and total garbage degrades to a fixed
// canonical failure object instead of an error. Typed validation of the
// repaired JSON belongs to the parse package, not here.
package normalize

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/dshills/valuelens/internal/canonical"
)

// defaultScore is used whenever an entry's score is missing or unusable.
// Inherited behavior; a neutral 0 would read better but would change the
// output of every malformed response, so it stays.
const defaultScore = 0.5

const (
	unknownTopic     = "Unknown"
	unknownLabel     = "Unknown"
	completedSummary = "Analysis completed."
	failedSummary    = "Analysis Failed"
)

// jsonSpanRe greedily captures the first balanced-looking {...} span in
// text that failed a direct parse, e.g. JSON surrounded by prose.
var jsonSpanRe = regexp.MustCompile(`(?s)\{.*\}`)

// fenceOpenRe strips one leading markdown fence with an optional language tag.
var fenceOpenRe = regexp.MustCompile("^```[a-zA-Z]*\\s*\n?")

// FixResponse turns raw LLM output into profile JSON. The result is always
// a well-formed JSON object string: fences are stripped, an embedded JSON
// span is extracted when the whole text does not parse, the legacy
// political_leaning field is renamed, every value_orientation entry is
// repaired, and missing presentation fields are default-filled. Unsalvagable
// input yields the canonical failure object with summary "Analysis Failed".
func FixResponse(raw string) string {
	doc, ok := extract(raw)
	if !ok {
		return mustJSON(failureObject())
	}

	fixOrientations(doc)
	fillDefaults(doc)
	return mustJSON(doc)
}

// extract strips fences and parses raw, falling back to the first {...}
// span. ok is false when no object can be recovered.
func extract(raw string) (map[string]any, bool) {
	s := strings.TrimSpace(raw)
	if m := fenceOpenRe.FindString(s); m != "" {
		s = s[len(m):]
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(s), &doc); err == nil {
		return doc, true
	}
	if span := jsonSpanRe.FindString(s); span != "" {
		if err := json.Unmarshal([]byte(span), &doc); err == nil {
			return doc, true
		}
	}
	return nil, false
}

// fixOrientations renames the legacy field, forces an array, and repairs
// each entry in place.
func fixOrientations(doc map[string]any) {
	if _, ok := doc["value_orientation"]; !ok {
		if legacy, ok := doc["political_leaning"]; ok {
			doc["value_orientation"] = legacy
		}
	}
	delete(doc, "political_leaning")

	arr, ok := doc["value_orientation"].([]any)
	if !ok {
		doc["value_orientation"] = []any{}
		return
	}
	for i, item := range arr {
		arr[i] = fixEntry(item)
	}
	doc["value_orientation"] = arr
}

// fixEntry repairs one value_orientation entry. Bare strings become labeled
// entries at the default score; objects get their label canonicalized and
// score sanitized; anything else becomes an Unknown placeholder.
func fixEntry(item any) map[string]any {
	switch v := item.(type) {
	case string:
		return map[string]any{"label": canonical.Normalize(v), "score": defaultScore}
	case map[string]any:
		label, ok := v["label"].(string)
		if !ok || label == "" {
			return map[string]any{"label": unknownLabel, "score": defaultScore}
		}
		return map[string]any{
			"label": canonical.Normalize(label),
			"score": fixScore(v["score"]),
		}
	default:
		return map[string]any{"label": unknownLabel, "score": defaultScore}
	}
}

// fixScore coerces a score value: non-numeric and NaN become the default,
// numbers are clamped into [-1, 1].
func fixScore(v any) float64 {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) {
		return defaultScore
	}
	if f < -1 {
		return -1
	}
	if f > 1 {
		return 1
	}
	return f
}

// fillDefaults supplies the presentation fields a downstream consumer
// assumes are present.
func fillDefaults(doc map[string]any) {
	if s, ok := doc["nickname"].(string); !ok || s == "" {
		doc["nickname"] = ""
	}
	if s, ok := doc["topic_classification"].(string); !ok || s == "" {
		doc["topic_classification"] = unknownTopic
	}
	if s, ok := doc["summary"].(string); !ok || s == "" {
		doc["summary"] = completedSummary
	}
	if _, ok := doc["evidence"]; !ok {
		doc["evidence"] = []any{}
	}
}

// failureObject is the canonical degraded result for unparseable output.
func failureObject() map[string]any {
	return map[string]any{
		"nickname":             "",
		"topic_classification": unknownTopic,
		"value_orientation":    []any{},
		"summary":              failedSummary,
		"evidence":             []any{},
	}
}

func mustJSON(doc map[string]any) string {
	b, err := json.Marshal(doc)
	if err != nil {
		// A map[string]any built from parsed JSON always marshals.
		panic(err)
	}
	return string(b)
}
