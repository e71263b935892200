// Package topic assigns a macro category to free-form text. The keyword
// pass is deterministic and ordered; an LLM-backed fallback is available
// for text the keyword pass cannot place.
package topic

import (
	"context"
	"strings"

	"github.com/dshills/valuelens/internal/catalog"
)

// Completer is the single LLM operation this package needs. It is satisfied
// by llm.Provider.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error)
}

// categoryKeywords pairs a category with its trigger keywords. The slice
// order is the match order and is load-bearing: entertainment is tested
// first so its narrow, ambiguous terms (fan, idol, drama) are not swallowed
// by the broader culture and society sets.
var categoryKeywords = []struct {
	Category string
	Keywords []string
}{
	{catalog.CategoryEntertainment, []string{
		"movie", "film", "tv show", "series", "episode", "netflix", "concert",
		"album", "singer", "idol", "celebrity", "fandom", "fan ", "drama",
		"anime", "comedy", "box office", "streaming", "video game", "gaming",
		"esports", "playlist",
	}},
	{catalog.CategoryPolitics, []string{
		"election", "vote", "government", "policy", "parliament", "congress",
		"senate", "president", "minister", "democracy", "protest", "legislation",
		"political", "campaign", "left-wing", "right-wing", "conservative",
		"liberal", "immigration",
	}},
	{catalog.CategoryEconomy, []string{
		"economy", "inflation", "interest rate", "stock", "market", "gdp",
		"recession", "tax", "salary", "wage", "investor", "crypto", "housing price",
		"unemployment", "tariff", "bank",
	}},
	{catalog.CategorySociety, []string{
		"society", "community", "inequality", "education", "school", "crime",
		"welfare", "gender", "marriage", "divorce", "generation", "social issue",
		"homeless", "discrimination", "public health",
	}},
	{catalog.CategoryTechnology, []string{
		"technology", "software", "hardware", "startup", " ai ", "artificial intelligence",
		"machine learning", "algorithm", "smartphone", "app ", "programming",
		"robot", "chip", "internet", "privacy", "data breach", "cyber",
	}},
	{catalog.CategoryCulture, []string{
		"culture", "art", "museum", "literature", "novel", "poetry", "painting",
		"exhibition", "heritage", "tradition", "festival", "language", "cuisine",
		"photography", "architecture",
	}},
	{catalog.CategoryEnvironment, []string{
		"environment", "climate", "carbon", "emission", "renewable", "pollution",
		"recycl", "wildlife", "conservation", "sustainab", "solar", "wind power",
		"deforestation", "plastic",
	}},
	{catalog.CategoryLifestyle, []string{
		"career", "job", "work-life", "workout", "fitness", "diet", "travel",
		"hobby", "minimalis", "productivity", "burnout", "remote work", "freelance",
		"wellness", "routine", "side hustle", "加班", "健身",
	}},
}

// Classify maps text to a macro category. Empty or whitespace-only input
// yields general. The first category with any keyword substring match wins;
// text matching nothing is general.
func Classify(text string) string {
	if strings.TrimSpace(text) == "" {
		return catalog.CategoryGeneral
	}
	lower := strings.ToLower(text)
	for _, ck := range categoryKeywords {
		for _, kw := range ck.Keywords {
			if strings.Contains(lower, kw) {
				return ck.Category
			}
		}
	}
	return catalog.CategoryGeneral
}

const classifySystemPrompt = `You are a topic classifier. Choose exactly one category id for the text.
Valid ids: politics, economy, society, technology, culture, environment, entertainment, lifestyle_career, general.
Respond with the single id and nothing else.`

// ClassifyWithLLM asks the model to choose one category id from the fixed
// list. Any transport error or an answer outside the id set degrades to
// general; this function never fails.
func ClassifyWithLLM(ctx context.Context, c Completer, text string) string {
	if strings.TrimSpace(text) == "" {
		return catalog.CategoryGeneral
	}
	raw, err := c.Complete(ctx, classifySystemPrompt, text, 16, 0)
	if err != nil {
		return catalog.CategoryGeneral
	}
	answer := strings.ToLower(strings.TrimSpace(raw))
	answer = strings.Trim(answer, "\"'`.")
	if catalog.IsCategory(answer) {
		return answer
	}
	return catalog.CategoryGeneral
}
