// Package analyze drives the full profile pipeline: prompt construction,
// provider invocation, tolerant repair, schema validation, and the single
// corrective retry. Callers get back either a well-formed profile (possibly
// degraded after a content-filter refusal) or one terminal error.
package analyze

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/valuelens/internal/catalog"
	"github.com/dshills/valuelens/internal/consistency"
	"github.com/dshills/valuelens/internal/llm"
	"github.com/dshills/valuelens/internal/locale"
	"github.com/dshills/valuelens/internal/normalize"
	"github.com/dshills/valuelens/internal/parse"
	"github.com/dshills/valuelens/internal/prompt"
	"github.com/dshills/valuelens/internal/schema"
	"github.com/dshills/valuelens/internal/topic"
)

// attemptState tracks where a generation request is in its retry lifecycle.
// FirstAttempt moves to Succeeded or Retrying; Retrying moves to Succeeded
// or Failed. There is never more than one retry.
type attemptState int

const (
	stateFirstAttempt attemptState = iota
	stateRetrying
	stateSucceeded
	stateFailed
)

// Options configures an Analyzer.
type Options struct {
	ProviderName string
	Model        string
	Mode         schema.Mode
	Locale       string
	MaxTokens    int
	Temperature  float64
	// Timeout bounds each provider call individually, not the request
	// as a whole.
	Timeout time.Duration
	Logger  *zap.Logger
}

// Analyzer runs profile generation against a single provider and mode.
type Analyzer struct {
	provider    llm.Provider
	mode        schema.Mode
	loc         locale.Locale
	maxTokens   int
	temperature float64
	timeout     time.Duration
	log         *zap.Logger
}

// New builds an Analyzer, constructing the provider through the factory.
func New(opts Options) (*Analyzer, error) {
	provider, err := llm.NewProvider(opts.ProviderName, opts.Model)
	if err != nil {
		return nil, fmt.Errorf("analyze: create provider: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	mode := opts.Mode
	if !mode.Valid() {
		mode = schema.ModeBalanced
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 600 * time.Second
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	return &Analyzer{
		provider:    provider,
		mode:        mode,
		loc:         locale.Get(opts.Locale),
		maxTokens:   maxTokens,
		temperature: opts.Temperature,
		timeout:     timeout,
		log:         log,
	}, nil
}

// Mode returns the analyzer's configured mode.
func (a *Analyzer) Mode() schema.Mode { return a.mode }

// Locale returns the analyzer's resolved locale.
func (a *Analyzer) Locale() locale.Locale { return a.loc }

// GenerateProfile produces a value-orientation profile for text. category
// may be empty, in which case it is inferred from keywords. The returned
// profile has canonical, deduplicated, evidence-damped scores; its summary
// is left exactly as the model wrote it.
func (a *Analyzer) GenerateProfile(ctx context.Context, text, category string) (*schema.Profile, error) {
	if category == "" || !catalog.IsCategory(category) {
		category = topic.Classify(text)
	}
	systemPrompt := prompt.BuildSystemPrompt(a.mode, category, text, a.loc)

	state := stateFirstAttempt
	var profile *schema.Profile
	var lastErr error

	for state == stateFirstAttempt || state == stateRetrying {
		attemptPrompt := systemPrompt
		if state == stateRetrying {
			attemptPrompt += "\n\n" + prompt.BuildRetryFeedback(a.mode, lastErr.Error())
		}

		p, err := a.attempt(ctx, attemptPrompt, text)
		switch {
		case err == nil:
			profile = p
			state = stateSucceeded
		case llm.IsContentFilter(err):
			a.log.Warn("provider refused input, returning degraded profile",
				zap.String("category", category), zap.Error(err))
			return a.degradedProfile(category), nil
		case llm.IsTimeout(err):
			return nil, fmt.Errorf("analyze: provider timeout: %w", err)
		case state == stateFirstAttempt && llm.IsRetryable(err):
			a.log.Warn("malformed model output, retrying once",
				zap.String("mode", string(a.mode)), zap.Error(err))
			lastErr = err
			state = stateRetrying
		default:
			state = stateFailed
			return nil, fmt.Errorf("analyze: generate profile: %w", err)
		}
	}

	consistency.NormalizeScores(profile, nil)
	consistency.AdjustScoresByEvidence(profile)
	if profile.TopicClassification == "" || profile.TopicClassification == "Unknown" {
		profile.TopicClassification = category
	}
	a.log.Info("profile generated",
		zap.String("category", profile.TopicClassification),
		zap.Int("orientations", len(profile.ValueOrientation)))
	return profile, nil
}

// attempt runs one provider call under the configured timeout and turns the
// raw response into a validated profile.
func (a *Analyzer) attempt(ctx context.Context, systemPrompt, text string) (*schema.Profile, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.provider.Complete(callCtx, systemPrompt, text, a.maxTokens, a.temperature)
	if err != nil {
		return nil, err
	}

	fixed := normalize.FixResponse(raw)
	p, serr := parse.Parse(fixed, a.mode)
	if serr != nil {
		return nil, serr
	}
	return p, nil
}

// degradedProfile is the terminal result for content-filter refusals: valid
// shape, no scores, and a summary that tells the user what happened.
func (a *Analyzer) degradedProfile(category string) *schema.Profile {
	return &schema.Profile{
		TopicClassification: category,
		ValueOrientation:    []schema.ValueOrientation{},
		Summary:             a.loc.DegradedSummary,
		Evidence:            []schema.Evidence{},
	}
}

// AlignSummary runs the optional post-processing pass over a finished
// profile: score zero-fill over the catalog, summary alignment for the
// mode's top scores, and conflict resolution against opposite phrases.
func AlignSummary(p *schema.Profile, mode schema.Mode, loc locale.Locale) {
	consistency.NormalizeScores(p, catalog.IDs())
	consistency.EnforceSummaryAlignment(p, mode, loc)
	consistency.ResolveSummaryConflicts(p, loc)
}
