// Package schema defines the canonical data types for value-orientation
// profiles: the analysis modes, the bounded bipolar scores, and the profile
// document exchanged with the LLM.
package schema

// Mode selects the analysis depth. It governs schema richness, few-shot
// count, catalog trimming, and summary-alignment width.
type Mode string

const (
	ModeFast     Mode = "fast"
	ModeBalanced Mode = "balanced"
	ModeDeep     Mode = "deep"
)

// Valid reports whether m is one of the three defined modes.
func (m Mode) Valid() bool {
	return m == ModeFast || m == ModeBalanced || m == ModeDeep
}

// RequiresReasoning reports whether the mode's schema requires the
// reasoning and evidence fields. Fast-mode profiles never carry either.
func (m Mode) RequiresReasoning() bool {
	return m == ModeBalanced || m == ModeDeep
}

// Params holds the per-mode tuning constants.
type Params struct {
	// FewShotCount is the number of retrieved examples embedded in the
	// prompt. Zero means retrieval is skipped and the static fallback
	// pair is used instead.
	FewShotCount int
	// CatalogLimit caps how many labels of the active category appear in
	// the prompt, highest weight first. Zero means no cap.
	CatalogLimit int
	// AlignTopK is how many top-|score| labels the summary-alignment pass
	// considers.
	AlignTopK int
	// SummaryTargetWords is the length target stated in the prompt rules.
	SummaryTargetWords int
}

// modeParams is the per-mode tuning table. Immutable after init.
var modeParams = map[Mode]Params{
	ModeFast:     {FewShotCount: 0, CatalogLimit: 3, AlignTopK: 0, SummaryTargetWords: 60},
	ModeBalanced: {FewShotCount: 2, CatalogLimit: 0, AlignTopK: 2, SummaryTargetWords: 120},
	ModeDeep:     {FewShotCount: 4, CatalogLimit: 0, AlignTopK: 3, SummaryTargetWords: 200},
}

// ParamsFor returns the tuning constants for m. Unknown modes get the
// balanced parameters.
func ParamsFor(m Mode) Params {
	if p, ok := modeParams[m]; ok {
		return p
	}
	return modeParams[ModeBalanced]
}

// ValueOrientation is one scored bipolar axis. A positive score agrees with
// the label's right phrase, a negative score with the left phrase.
type ValueOrientation struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Evidence is a supporting quote with analysis. It is free text: nothing
// guarantees structurally that it supports any particular label.
type Evidence struct {
	Quote       string `json:"quote"`
	Analysis    string `json:"analysis"`
	SourceTitle string `json:"source_title"`
	SourceID    string `json:"source_id,omitempty"`
}

// Profile is the transient analysis result for one request. It is created
// and consumed within a single call; persistence is a collaborator concern.
type Profile struct {
	Nickname            string             `json:"nickname"`
	TopicClassification string             `json:"topic_classification"`
	Reasoning           string             `json:"reasoning,omitempty"`
	ValueOrientation    []ValueOrientation `json:"value_orientation"`
	Summary             string             `json:"summary"`
	Evidence            []Evidence         `json:"evidence,omitempty"`
}

// ClampScore forces s into [-1, 1]. NaN is the caller's problem; every
// ingestion path replaces NaN before clamping.
func ClampScore(s float64) float64 {
	if s < -1 {
		return -1
	}
	if s > 1 {
		return 1
	}
	return s
}
