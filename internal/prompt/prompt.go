// Package prompt assembles the mode-aware system prompt sent to the LLM.
//
// The textual structure is a wire contract: rule lines are numbered and
// bracket-tagged (【Rule Name】), the few-shot section is headed
// 【Few-Shot Examples】, and catalog lines have the exact form
// `- 【{id}】: {left} ↔ {right} ({category})`. Upstream prompt tuning and
// the example bank were written against this layout; do not restyle it.
package prompt

import (
	"fmt"
	"strings"

	"github.com/dshills/valuelens/internal/catalog"
	"github.com/dshills/valuelens/internal/example"
	"github.com/dshills/valuelens/internal/locale"
	"github.com/dshills/valuelens/internal/schema"
)

// fastSchema is the format-instruction block for fast mode.
const fastSchema = `Output ONLY valid JSON in exactly this shape. No prose, no markdown fences.
{
  "nickname": "short display name inferred from the text, or \"\"",
  "topic_classification": "one macro category id",
  "value_orientation": [
    {"label": "canonical_label_id", "score": 0.0}
  ],
  "summary": "narrative summary"
}
Every score must be a number between -1.0 and 1.0.`

// richSchema is the format-instruction block for balanced and deep modes.
const richSchema = `Output ONLY valid JSON in exactly this shape. No prose, no markdown fences.
{
  "nickname": "short display name inferred from the text, or \"\"",
  "topic_classification": "one macro category id",
  "reasoning": "your step-by-step analysis, written before scoring",
  "value_orientation": [
    {"label": "canonical_label_id", "score": 0.0}
  ],
  "summary": "narrative summary",
  "evidence": [
    {"quote": "verbatim quote", "analysis": "why it matters", "source_title": "where it came from", "source_id": "optional id"}
  ]
}
Every score must be a number between -1.0 and 1.0. reasoning and evidence are required.`

// FormatInstructions returns the machine-readable output-shape block for the
// active schema.
func FormatInstructions(mode schema.Mode) string {
	if mode.RequiresReasoning() {
		return richSchema
	}
	return fastSchema
}

// BuildSystemPrompt produces the complete system prompt for one analysis
// request: role framing, format instructions, the numbered rule list, the
// few-shot block, and the category-filtered label catalog.
func BuildSystemPrompt(mode schema.Mode, category, inputText string, loc locale.Locale) string {
	var sb strings.Builder

	// Role framing. The researcher frame measurably reduces over-refusal on
	// opinionated source text.
	sb.WriteString("You are a sociology researcher studying value orientations in social media language. ")
	sb.WriteString("You analyze one author's posts and produce a structured, neutral profile of their expressed values.\n\n")

	sb.WriteString(FormatInstructions(mode))
	sb.WriteString("\n\n")

	writeRules(&sb, mode, category, loc)
	writeFewShot(&sb, mode, category, inputText)
	writeCatalog(&sb, mode, category)

	return sb.String()
}

// writeRules emits the numbered, bracket-tagged rule list.
func writeRules(sb *strings.Builder, mode schema.Mode, category string, loc locale.Locale) {
	params := schema.ParamsFor(mode)
	n := 0
	rule := func(name, body string) {
		n++
		fmt.Fprintf(sb, "%d. 【%s】%s\n", n, name, body)
	}

	rule("Category Relevance", fmt.Sprintf(
		"Judge how the text relates to the %q category. Score only labels the text actually supports; omit labels with no signal.", category))
	if mode.RequiresReasoning() {
		rule("Chain of Thought", "Fill the reasoning field with your analysis BEFORE assigning any score. Scores must follow from the reasoning.")
	}
	rule("Neutrality", "Describe, never judge. No moral evaluation of the author, no loaded adjectives.")
	rule("Canonical Label IDs", "Use the exact label ids listed in the catalog below. Never translate them, never invent new ids.")
	rule("Scoring Convention", "+1.0 means full agreement with a label's right-side description, -1.0 full agreement with the left side. Use the whole range.")
	rule("Output Language", loc.LanguageRule)
	rule("Sensitive Content", "If the text contains slurs, harassment, or graphic material, do not repeat it. Summarize the tone and communication style instead.")
	rule("Summary Consistency", fmt.Sprintf(
		"The summary must reflect the direction of the scored labels through natural language. Never cite a numeric score in the summary. Target roughly %d words.",
		params.SummaryTargetWords))
	sb.WriteString("\n")
}

// writeFewShot emits the 【Few-Shot Examples】 section. Fast mode always
// skips retrieval and uses the static fallback pair, as does any retrieval
// miss.
func writeFewShot(sb *strings.Builder, mode schema.Mode, category, inputText string) {
	sb.WriteString("【Few-Shot Examples】\n")

	var examples []example.Example
	if n := schema.ParamsFor(mode).FewShotCount; n > 0 {
		examples = example.GetRelevant(inputText, category, n)
	}
	if len(examples) == 0 {
		pair := example.FallbackPair()
		examples = pair[:]
	}

	for i, ex := range examples {
		fmt.Fprintf(sb, "Example %d:\n> %s\n", i+1, ex.Content)
		for _, vo := range ex.ValueOrientations {
			fmt.Fprintf(sb, "- 【%s】: %+.2f\n", vo.Label, vo.Score)
		}
		if mode.RequiresReasoning() && ex.Reasoning != "" {
			fmt.Fprintf(sb, "Reasoning: %s\n", ex.Reasoning)
		}
		fmt.Fprintf(sb, "Summary: %s\n\n", ex.Summary)
	}
}

// writeCatalog emits the category-filtered label catalog. Fast mode lists
// only the highest-weight labels; deep and balanced get the full
// category-relevant set.
func writeCatalog(sb *strings.Builder, mode schema.Mode, category string) {
	sb.WriteString("【Label Catalog】\n")
	for _, l := range catalog.TopWeighted(category, schema.ParamsFor(mode).CatalogLimit) {
		fmt.Fprintf(sb, "- 【%s】: %s ↔ %s (%s)\n", l.ID, l.Left, l.Right, l.Category)
	}
}

// BuildRetryFeedback returns the corrective block appended to the rebuilt
// system prompt on the single retry. Verbosity follows the mode: fast keeps
// it to the error and the shape, deeper modes restate the contract.
func BuildRetryFeedback(mode schema.Mode, failure string) string {
	var sb strings.Builder
	sb.WriteString("\n【Previous Attempt Error】\n")
	sb.WriteString("Your previous response was rejected: ")
	sb.WriteString(failure)
	sb.WriteString("\n")
	if mode.RequiresReasoning() {
		sb.WriteString("Re-read the format instructions. Every required field must be present, ")
		sb.WriteString("every label must be a canonical id from the catalog, and every score must be a number in [-1.0, 1.0]. ")
		sb.WriteString("Fill reasoning before scoring and attach evidence entries.\n")
	}
	sb.WriteString("\n")
	sb.WriteString(FormatInstructions(mode))
	sb.WriteString("\nOutput only the corrected JSON. Do not repeat the error.\n")
	return sb.String()
}
