// Package canonical maps noisy label identifiers produced by the LLM onto
// canonical catalog ids. It is the single home of the alias table; no other
// package may carry its own copy.
package canonical

import (
	"regexp"
	"strings"

	"github.com/dshills/valuelens/internal/catalog"
)

// alias is one table entry. The table is an ordered slice, not a map, so
// that the substring fallback has a fixed, documented iteration order:
// declaration order, first match wins.
type alias struct {
	From string // normalized alias form
	To   string // canonical catalog id
}

// aliases maps common permutations (a_vs_b and b_vs_a), synonyms, and known
// misspellings onto canonical ids. Every entry must already be in normalized
// form (lower case, underscores). Grouped by target label in catalog order.
var aliases = []alias{
	// ideology
	{"left_right", "ideology"},
	{"right_left", "ideology"},
	{"left_vs_right", "ideology"},
	{"right_vs_left", "ideology"},
	{"political_ideology", "ideology"},
	{"political_leaning", "ideology"},
	{"idealogy", "ideology"},
	{"idealogoy", "ideology"},
	{"ideologie", "ideology"},

	// authority
	{"authoritarianism", "authority"},
	{"anti_authority", "authority"},
	{"authority_attitude", "authority"},
	{"libertarian_authoritarian", "authority"},
	{"authoritarian_libertarian", "authority"},
	{"obedience", "authority"},

	// nationalism
	{"nationalist", "nationalism"},
	{"globalism", "nationalism"},
	{"patriotism", "nationalism"},
	{"nation_first", "nationalism"},
	{"global_vs_national", "nationalism"},
	{"national_vs_global", "nationalism"},

	// institutional_trust
	{"trust_in_institutions", "institutional_trust"},
	{"institution_trust", "institutional_trust"},
	{"institutional_confidence", "institutional_trust"},
	{"trust_institutions", "institutional_trust"},

	// free_speech
	{"freedom_of_speech", "free_speech"},
	{"speech_freedom", "free_speech"},
	{"censorship", "free_speech"},
	{"moderation_vs_speech", "free_speech"},
	{"speech_vs_moderation", "free_speech"},

	// market_regulation
	{"regulation_vs_market", "market_regulation"},
	{"market_vs_regulation", "market_regulation"},
	{"free_market", "market_regulation"},
	{"state_regulation", "market_regulation"},
	{"economic_regulation", "market_regulation"},
	{"regulation", "market_regulation"},

	// wealth_redistribution
	{"redistribution_of_wealth", "wealth_redistribution"},
	{"income_redistribution", "wealth_redistribution"},
	{"redistribution", "wealth_redistribution"},
	{"welfare_attitude", "wealth_redistribution"},

	// consumerism
	{"consumption", "consumerism"},
	{"spending_style", "consumerism"},
	{"frugality", "consumerism"},
	{"saving_vs_spending", "consumerism"},
	{"spending_vs_saving", "consumerism"},

	// economic_optimism
	{"economic_outlook", "economic_optimism"},
	{"economy_outlook", "economic_optimism"},
	{"economic_confidence", "economic_optimism"},
	{"economy_optimism", "economic_optimism"},

	// tradition
	{"traditionalism", "tradition"},
	{"traditional_values", "tradition"},
	{"progressive_vs_traditional", "tradition"},
	{"traditional_vs_progressive", "tradition"},
	{"social_change", "tradition"},

	// collectivism
	{"individualism_vs_collectivism", "collectivism"},
	{"collectivism_vs_individualism", "collectivism"},
	{"individual_vs_collective", "collectivism"},
	{"individualism", "collectivism"},

	// diversity
	{"multiculturalism", "diversity"},
	{"diversity_attitude", "diversity"},
	{"diversity_openness", "diversity"},
	{"inclusion", "diversity"},

	// gender_roles
	{"gender_role", "gender_roles"},
	{"gender_equality", "gender_roles"},
	{"gender_attitude", "gender_roles"},
	{"sex_roles", "gender_roles"},

	// social_trust
	{"interpersonal_trust", "social_trust"},
	{"trust_in_others", "social_trust"},
	{"trust_others", "social_trust"},
	{"generalized_trust", "social_trust"},

	// family_centrality
	{"family_orientation", "family_centrality"},
	{"family_values", "family_centrality"},
	{"family_first", "family_centrality"},
	{"family_focus", "family_centrality"},

	// tech_optimism
	{"technology_optimism", "tech_optimism"},
	{"techno_optimism", "tech_optimism"},
	{"tech_attitude", "tech_optimism"},
	{"technology_attitude", "tech_optimism"},
	{"tech_enthusiasm", "tech_optimism"},

	// ai_attitude
	{"attitude_to_ai", "ai_attitude"},
	{"ai_stance", "ai_attitude"},
	{"ai_optimism", "ai_attitude"},
	{"artificial_intelligence", "ai_attitude"},
	{"ai", "ai_attitude"},

	// privacy
	{"data_privacy", "privacy"},
	{"privacy_concern", "privacy"},
	{"privacy_vs_convenience", "privacy"},
	{"convenience_vs_privacy", "privacy"},

	// early_adoption
	{"early_adopter", "early_adoption"},
	{"tech_adoption", "early_adoption"},
	{"adoption", "early_adoption"},
	{"adopter", "early_adoption"},

	// screen_time
	{"screentime", "screen_time"},
	{"online_time", "screen_time"},
	{"digital_habits", "screen_time"},
	{"always_online", "screen_time"},

	// cultural_openness
	{"culture_openness", "cultural_openness"},
	{"cultural_curiosity", "cultural_openness"},
	{"openness_to_culture", "cultural_openness"},
	{"foreign_culture", "cultural_openness"},

	// art_engagement
	{"art_interest", "art_engagement"},
	{"arts_engagement", "art_engagement"},
	{"aesthetic_engagement", "art_engagement"},

	// media_taste
	{"media_preference", "media_taste"},
	{"mainstream_vs_niche", "media_taste"},
	{"niche_vs_mainstream", "media_taste"},

	// nostalgia
	{"nostalgic", "nostalgia"},
	{"retro_orientation", "nostalgia"},
	{"past_vs_future", "nostalgia"},
	{"future_vs_past", "nostalgia"},

	// climate_concern
	{"climate_change", "climate_concern"},
	{"climate_attitude", "climate_concern"},
	{"climate_anxiety", "climate_concern"},
	{"global_warming", "climate_concern"},
	{"climate", "climate_concern"},

	// growth_vs_protection
	{"protection_vs_growth", "growth_vs_protection"},
	{"environment_vs_growth", "growth_vs_protection"},
	{"growth_vs_environment", "growth_vs_protection"},
	{"eco_protection", "growth_vs_protection"},

	// green_lifestyle
	{"sustainable_lifestyle", "green_lifestyle"},
	{"sustainability", "green_lifestyle"},
	{"eco_lifestyle", "green_lifestyle"},
	{"green_habits", "green_lifestyle"},

	// animal_welfare
	{"animal_rights", "animal_welfare"},
	{"animal_protection", "animal_welfare"},
	{"animals", "animal_welfare"},

	// fandom_intensity
	{"fan_intensity", "fandom_intensity"},
	{"fan_engagement", "fandom_intensity"},
	{"fandom", "fandom_intensity"},
	{"superfan", "fandom_intensity"},

	// content_preference
	{"highbrow_vs_lowbrow", "content_preference"},
	{"lowbrow_vs_highbrow", "content_preference"},
	{"entertainment_preference", "content_preference"},
	{"content_taste", "content_preference"},

	// humor_style
	{"sense_of_humor", "humor_style"},
	{"humour_style", "humor_style"},
	{"humor", "humor_style"},
	{"humour", "humor_style"},

	// celebrity_culture
	{"celeb_culture", "celebrity_culture"},
	{"celebrity_interest", "celebrity_culture"},
	{"star_culture", "celebrity_culture"},
	{"celebrity", "celebrity_culture"},

	// live_experience
	{"live_events", "live_experience"},
	{"live_vs_home", "live_experience"},
	{"home_vs_live", "live_experience"},
	{"concerts", "live_experience"},

	// work_life_balance
	{"life_work_balance", "work_life_balance"},
	{"worklife_balance", "work_life_balance"},
	{"work_vs_life", "work_life_balance"},
	{"life_vs_work", "work_life_balance"},
	{"work_life", "work_life_balance"},

	// risk_appetite
	{"risk_tolerance", "risk_appetite"},
	{"risk_taking", "risk_appetite"},
	{"risk_aversion", "risk_appetite"},
	{"risk_seeking", "risk_appetite"},

	// health_consciousness
	{"healthy_lifestyle", "health_consciousness"},
	{"health_focus", "health_consciousness"},
	{"wellness", "health_consciousness"},
	{"health", "health_consciousness"},

	// minimalism
	{"minimalist", "minimalism"},
	{"simple_living", "minimalism"},
	{"decluttering", "minimalism"},

	// urban_preference
	{"urban_vs_rural", "urban_preference"},
	{"rural_vs_urban", "urban_preference"},
	{"city_vs_country", "urban_preference"},
	{"urbanism", "urban_preference"},
}

// aliasExact is the exact-lookup index over aliases, built once at init.
var aliasExact = func() map[string]string {
	m := make(map[string]string, len(aliases))
	for _, a := range aliases {
		if _, dup := m[a.From]; !dup {
			m[a.From] = a.To
		}
	}
	return m
}()

var separatorRe = regexp.MustCompile(`[\s\-.]+`)
var repeatRe = regexp.MustCompile(`_+`)

// fold lower-cases and trims id, collapses whitespace, hyphens, and periods
// to single underscores, and collapses runs of underscores.
func fold(id string) string {
	s := strings.ToLower(strings.TrimSpace(id))
	s = separatorRe.ReplaceAllString(s, "_")
	s = repeatRe.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// Normalize maps a noisy label identifier onto a canonical catalog id.
// The result is idempotent: canonical ids map to themselves, and anything
// that fails every lookup is returned in folded form unchanged. Callers must
// treat unmatched results as opaque; they will not hit any catalog entry and
// so cannot participate in consistency checks.
func Normalize(id string) string {
	s := fold(id)
	if s == "" {
		return s
	}
	if _, ok := catalog.Lookup(s); ok {
		return s
	}
	if to, ok := aliasExact[s]; ok {
		return to
	}
	return substringFallback(s)
}

// IsCanonical reports whether id (after normalization) is a catalog id.
func IsCanonical(id string) bool {
	_, ok := catalog.Lookup(Normalize(id))
	return ok
}

// substringFallback scans the alias table in declaration order and returns
// the canonical id of the first entry whose alias appears inside s, or whose
// canonical id (underscores stripped) appears inside s with underscores
// stripped. Aliases shorter than four runes are skipped here: they are safe
// as exact matches but match almost anything as substrings.
func substringFallback(s string) string {
	stripped := strings.ReplaceAll(s, "_", "")
	for _, a := range aliases {
		if len(a.From) >= 4 && strings.Contains(s, a.From) {
			return a.To
		}
		if strings.Contains(stripped, strings.ReplaceAll(a.To, "_", "")) {
			return a.To
		}
	}
	return s
}
