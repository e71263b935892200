// Package locale holds the per-locale strings used by prompt construction
// and summary post-processing. The table is immutable after init.
package locale

// Locale bundles the strings a single UI locale contributes to the pipeline.
type Locale struct {
	Code string
	// LanguageRule is the output-language requirement stated in the prompt.
	LanguageRule string
	// Connector joins appended summary clauses.
	Connector string
	// AlignmentNotice is prepended to a summary after conflict resolution.
	AlignmentNotice string
	// Intensity words by descending threshold: strong >= 0.7, clear >= 0.5,
	// slight >= 0.3, mild below.
	Strong, Clear, Slight, Mild string
	// DegradedSummary explains a content-filter refusal to the end user.
	DegradedSummary string
	// FailedSummary marks a profile built from unparseable output.
	FailedSummary string
}

// Intensity returns the intensity word for an absolute score.
func (l Locale) Intensity(abs float64) string {
	switch {
	case abs >= 0.7:
		return l.Strong
	case abs >= 0.5:
		return l.Clear
	case abs >= 0.3:
		return l.Slight
	default:
		return l.Mild
	}
}

var locales = map[string]Locale{
	"en": {
		Code:            "en",
		LanguageRule:    "Write the summary, reasoning, and evidence analysis in English.",
		Connector:       "; also ",
		AlignmentNotice: "[Summary adjusted for score consistency] ",
		Strong:          "strongly",
		Clear:           "clearly",
		Slight:          "slightly",
		Mild:            "mildly",
		DegradedSummary: "The content could not be analyzed because the provider declined the request. No value scores were produced.",
		FailedSummary:   "Analysis Failed",
	},
	"zh": {
		Code:            "zh",
		LanguageRule:    "请使用中文撰写 summary、reasoning 和 evidence 的 analysis 字段。",
		Connector:       "；同时",
		AlignmentNotice: "【摘要已按评分一致性调整】",
		Strong:          "强烈",
		Clear:           "明显",
		Slight:          "略微",
		Mild:            "轻微",
		DegradedSummary: "服务方拒绝了本次请求，内容未能分析，未生成任何价值取向评分。",
		FailedSummary:   "Analysis Failed",
	},
}

// Get returns the locale for code. Unknown codes fall back to en rather
// than erroring, mirroring the pipeline's degrade-don't-fail posture.
func Get(code string) Locale {
	if l, ok := locales[code]; ok {
		return l
	}
	return locales["en"]
}
