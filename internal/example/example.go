// Package example selects few-shot examples for prompt construction from a
// small curated bank, scored by lexical similarity to the input text.
package example

import (
	"sort"
	"strings"
	"unicode"

	"github.com/dshills/valuelens/internal/schema"
	"github.com/dshills/valuelens/internal/topic"
)

// Example is one seed entry of the few-shot bank.
type Example struct {
	ID                string
	Content           string
	Category          string
	ValueOrientations []schema.ValueOrientation
	Summary           string
	Reasoning         string
	Evidence          []schema.Evidence
}

// GetRelevant returns up to count bank examples for the category, most
// lexically similar to inputText first. Candidates are bank entries whose
// stored category matches, or whose classifier-inferred category matches;
// if neither filter keeps anything the full bank is used. The sort is
// stable on score ties, so identical inputs always produce the same list.
func GetRelevant(inputText, category string, count int) []Example {
	if count <= 0 {
		return nil
	}

	candidates := make([]Example, 0, len(bank))
	for _, ex := range bank {
		if ex.Category == category || topic.Classify(ex.Content) == category {
			candidates = append(candidates, ex)
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, bank...)
	}

	inputTokens := tokenize(inputText)
	scored := make([]struct {
		ex    Example
		score float64
	}, len(candidates))
	for i, ex := range candidates {
		scored[i].ex = ex
		scored[i].score = jaccard(inputTokens, tokenize(ex.Content))
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	if count > len(scored) {
		count = len(scored)
	}
	out := make([]Example, count)
	for i := 0; i < count; i++ {
		out[i] = scored[i].ex
	}
	return out
}

// tokenize splits text into a lower-cased token set. Tokens are runs of
// letters and digits; every CJK rune is additionally emitted as its own
// token, giving partial credit for scripts without whitespace word breaks.
func tokenize(text string) map[string]struct{} {
	tokens := map[string]struct{}{}
	var word []rune
	flush := func() {
		if len(word) > 0 {
			tokens[strings.ToLower(string(word))] = struct{}{}
			word = word[:0]
		}
	}
	for _, r := range text {
		if isCJK(r) {
			flush()
			tokens[string(r)] = struct{}{}
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word = append(word, r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}

// isCJK reports whether r belongs to a script without whitespace word breaks.
func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r)
}

// jaccard computes |a∩b| / |a∪b|. Two empty sets score zero.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
